// internal/vigencia/resolver.go
//
// Resolve "qual valor/comissão está de fato em vigor hoje?" para um imóvel.
// Como renovações e reajustes podem ser pré-agendados, os campos do próprio
// imóvel podem descrever um período que ainda não começou; confiar neles às
// cegas inflaria qualquer painel de receita.
package vigencia

import (
	"time"

	"github.com/vistasoft/api-imoveis/internal/historico"
	"github.com/vistasoft/api-imoveis/internal/imovel"
)

// Origem indica de onde saíram os valores resolvidos.
type Origem string

const (
	OrigemImovel    Origem = "imovel"
	OrigemHistorico Origem = "historico"
)

// Situacao qualifica o resultado para exibição.
const (
	SituacaoVigente     = "Vigente"
	SituacaoNaoIniciada = "NaoIniciada"
)

// Resultado são os valores em vigor na data de referência.
type Resultado struct {
	Valor    float64 `json:"valor"`
	Comissao float64 `json:"comissao"`
	Origem   Origem  `json:"origem"`
	Situacao string  `json:"situacao"`
}

// Resolver aplica a regra de vigência em três ramos:
//
//  1. período corrente já começou (DataFechamento ≤ referência): os campos do
//     imóvel mandam;
//  2. período corrente ainda no futuro: vale o registro do histórico cujo fim
//     de vigência coincide com a DataFechamento; é ele que está sendo
//     cobrado hoje, pendente da mudança agendada;
//  3. sem elo no histórico (contrato novo pré-agendado): devolve os campos do
//     imóvel marcados como NaoIniciada para a tela não ficar em branco.
//
// Comparações de data são feitas em granularidade de dia.
func Resolver(im *imovel.Imovel, registros []historico.HistoricoFinanceiro, dataReferencia time.Time) Resultado {
	if im.DataFechamento == nil || !dia(*im.DataFechamento).After(dia(dataReferencia)) {
		return Resultado{
			Valor:    im.ValorPeriodo,
			Comissao: im.ComissaoPeriodo,
			Origem:   OrigemImovel,
			Situacao: SituacaoVigente,
		}
	}

	for _, reg := range registros {
		if reg.ImovelID == im.ID && dia(reg.FimVigencia).Equal(dia(*im.DataFechamento)) {
			return Resultado{
				Valor:    reg.Valor,
				Comissao: reg.Comissao,
				Origem:   OrigemHistorico,
				Situacao: SituacaoVigente,
			}
		}
	}

	return Resultado{
		Valor:    im.ValorPeriodo,
		Comissao: im.ComissaoPeriodo,
		Origem:   OrigemImovel,
		Situacao: SituacaoNaoIniciada,
	}
}

func dia(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
