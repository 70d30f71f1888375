// internal/rateio/dto.go
package rateio

type RateioDTO struct {
	TipoBeneficiario string  `json:"tipoBeneficiario"`
	BeneficiarioID   uint    `json:"beneficiarioId"`
	NomeBeneficiario string  `json:"nomeBeneficiario"`
	Percentual       float64 `json:"percentual"`
	Valor            float64 `json:"valor"`
}

type SalvarRateiosDTO struct {
	Rateios []RateioDTO `json:"rateios"`
}

// ListaRateiosDTO distingue rateios salvos de uma sugestão padrão ainda não
// persistida (venda recém-fechada sem distribuição gravada).
type ListaRateiosDTO struct {
	Rateios  []RateioComissao `json:"rateios"`
	Sugestao bool             `json:"sugestao"`
}
