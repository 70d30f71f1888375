// internal/transacao/dto.go
package transacao

type FecharDTO struct {
	LeadID       *uint   `json:"leadId"`
	FechadoPorID *uint   `json:"fechadoPorId"`
	Valor        float64 `json:"valor"`
	Comissao     float64 `json:"comissao"`
	DataInicio   string  `json:"dataInicio"` // AAAA-MM-DD, opcional para venda
	DataFim      string  `json:"dataFim"`    // AAAA-MM-DD, obrigatório para locação
}

type RenovarDTO struct {
	NovoValor    float64 `json:"novoValor"`
	NovaComissao float64 `json:"novaComissao"`
	NovoInicio   string  `json:"novoInicio"` // AAAA-MM-DD
	NovoFim      string  `json:"novoFim"`    // AAAA-MM-DD
}

type ReajustarDTO struct {
	NovoValor    float64 `json:"novoValor"`
	NovaComissao float64 `json:"novaComissao"`
	DataVigencia string  `json:"dataVigencia"` // AAAA-MM-DD
}
