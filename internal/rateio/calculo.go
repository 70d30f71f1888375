// internal/rateio/calculo.go
//
// Matemática pura do rateio: manter Percentual e Valor consistentes a cada
// edição e validar a soma antes da persistência. Nenhuma função aqui toca o
// banco.
package rateio

import (
	"errors"
	"math"
	"os"
	"strconv"

	"github.com/shopspring/decimal"
)

// ToleranciaPadrao é a folga aceita, em pontos percentuais, entre a soma dos
// percentuais e 100 na validação de persistência. Pode ser sobrescrita via
// variável de ambiente RATEIO_TOLERANCIA.
const ToleranciaPadrao = 0.5

// ErrBeneficiarioDuplicado indica tentativa de incluir duas vezes o mesmo
// beneficiário no rateio de um imóvel.
var ErrBeneficiarioDuplicado = errors.New("beneficiário já possui participação no rateio")

// Tolerancia retorna a tolerância configurada (RATEIO_TOLERANCIA) ou a padrão.
func Tolerancia() float64 {
	if s := os.Getenv("RATEIO_TOLERANCIA"); s != "" {
		if v, err := strconv.ParseFloat(s, 64); err == nil && v > 0 {
			return v
		}
	}
	return ToleranciaPadrao
}

// DefinirPorPercentual fixa o percentual da posição idx e recalcula o valor a
// partir da comissão total. Com comissão total zerada a edição é descartada
// (no-op), preservando o par percentual/valor anterior.
func DefinirPorPercentual(rateios []RateioComissao, idx int, percentual, comissaoTotal float64) {
	if idx < 0 || idx >= len(rateios) || comissaoTotal == 0 {
		return
	}
	rateios[idx].Percentual = percentual
	rateios[idx].Valor = comissaoTotal * percentual / 100
}

// DefinirPorValor é o simétrico: fixa o valor e recalcula o percentual.
func DefinirPorValor(rateios []RateioComissao, idx int, valor, comissaoTotal float64) {
	if idx < 0 || idx >= len(rateios) || comissaoTotal == 0 {
		return
	}
	rateios[idx].Valor = valor
	rateios[idx].Percentual = valor / comissaoTotal * 100
}

// AdicionarBeneficiario acrescenta uma participação zerada para o beneficiário
// informado. Recusa com ErrBeneficiarioDuplicado se ele já consta na lista.
func AdicionarBeneficiario(rateios []RateioComissao, novo RateioComissao) ([]RateioComissao, error) {
	for _, r := range rateios {
		if r.TipoBeneficiario == novo.TipoBeneficiario && r.BeneficiarioID == novo.BeneficiarioID {
			return rateios, ErrBeneficiarioDuplicado
		}
	}
	novo.Percentual = 0
	novo.Valor = 0
	return append(rateios, novo), nil
}

// RemoverBeneficiario descarta a posição idx. Os percentuais restantes não são
// renormalizados: quem salva precisa fechar os 100% de novo.
func RemoverBeneficiario(rateios []RateioComissao, idx int) []RateioComissao {
	if idx < 0 || idx >= len(rateios) {
		return rateios
	}
	return append(rateios[:idx], rateios[idx+1:]...)
}

// SomaValida verifica |Σ percentual − 100| ≤ tolerância. Tolerância não
// positiva cai na configurada.
func SomaValida(rateios []RateioComissao, tolerancia float64) bool {
	if tolerancia <= 0 {
		tolerancia = Tolerancia()
	}
	var soma float64
	for _, r := range rateios {
		soma += r.Percentual
	}
	return math.Abs(soma-100) <= tolerancia
}

// NormalizarParaPersistencia arredonda percentuais e valores para 2 casas
// antes de gravar, evitando que o ruído de ponto flutuante acumule entre
// edições sucessivas.
func NormalizarParaPersistencia(rateios []RateioComissao) {
	for i := range rateios {
		rateios[i].Percentual = arredonda2(rateios[i].Percentual)
		rateios[i].Valor = arredonda2(rateios[i].Valor)
	}
}

// RateiosPadrao monta a distribuição inicial de uma venda recém-fechada:
// imobiliária e corretor conhecidos, 50/50; sem corretor, imobiliária 100%.
func RateiosPadrao(imovelID uint, nomeImobiliaria string, corretorID *uint, nomeCorretor string, comissaoTotal float64) []RateioComissao {
	imob := RateioComissao{
		ImovelID:         imovelID,
		TipoBeneficiario: TipoImobiliaria,
		BeneficiarioID:   1,
		NomeBeneficiario: nomeImobiliaria,
	}
	if corretorID == nil {
		imob.Percentual = 100
		imob.Valor = comissaoTotal
		return []RateioComissao{imob}
	}

	imob.Percentual = 50
	imob.Valor = comissaoTotal / 2
	corr := RateioComissao{
		ImovelID:         imovelID,
		TipoBeneficiario: TipoCorretor,
		BeneficiarioID:   *corretorID,
		NomeBeneficiario: nomeCorretor,
		Percentual:       50,
		Valor:            comissaoTotal / 2,
	}
	return []RateioComissao{imob, corr}
}

func arredonda2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
