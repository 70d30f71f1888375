// internal/imovel/dto.go
package imovel

type CriarImovelDTO struct {
	Titulo       string  `json:"titulo"`
	Finalidade   string  `json:"finalidade"`
	ValorAnuncio float64 `json:"valorAnuncio"`
	Observacoes  string  `json:"observacoes"`
}

type AtualizarImovelDTO struct {
	Titulo       *string  `json:"titulo"`
	ValorAnuncio *float64 `json:"valorAnuncio"`
	Observacoes  *string  `json:"observacoes"`
}
