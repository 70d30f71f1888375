// internal/transacao/service.go
//
// Máquina de estados do ciclo transacional de um imóvel:
//
//	Ativo → Fechado (Fechar) → Ativo (Reativar) → Fechado ...
//	Fechado → Fechado (Renovar / Reajustar, só locações: mesmo estado,
//	novo período, com o período anterior arquivado no histórico)
package transacao

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/vistasoft/api-imoveis/internal/historico"
	"github.com/vistasoft/api-imoveis/internal/imovel"
	"github.com/vistasoft/api-imoveis/internal/lead"
	"github.com/vistasoft/api-imoveis/internal/notificacao"
	"github.com/vistasoft/api-imoveis/internal/rateio"
)

// Service orquestra as transições de estado e seus efeitos colaterais
// (arquivamento no histórico, avanço de status do lead, webhook).
type Service struct {
	DB         *gorm.DB
	Imoveis    *imovel.Repository
	Leads      lead.Repository
	Historicos *historico.Repository
	Rateios    *rateio.Repository

	// Notificar permite desligar o webhook em testes.
	Notificar bool
}

// NewService cria um Service com os repositórios padrão.
func NewService(db *gorm.DB) *Service {
	return &Service{
		DB:         db,
		Imoveis:    imovel.NewRepository(db),
		Leads:      lead.NewRepository(),
		Historicos: historico.NewRepository(db),
		Rateios:    rateio.NewRepository(db),
		Notificar:  true,
	}
}

// ParametrosFechamento são os dados de um fechamento (venda ou locação).
// LeadID ausente caracteriza fechamento externo: intermediado por terceiros e
// registrado só para controle de estoque, sem valores e sem efeito no lead.
type ParametrosFechamento struct {
	LeadID       *uint
	FechadoPorID *uint
	Valor        float64
	Comissao     float64
	DataInicio   *time.Time
	DataFim      *time.Time
}

// Fechar transiciona Ativo → Fechado. A escrita do imóvel (com descarte de
// rateios obsoletos) é atômica; o avanço do lead vem depois, em chamada
// separada: se ela falhar, o fechamento permanece válido e o chamador recebe
// ErrEfeitoParcial.
func (s *Service) Fechar(imovelID uint, p ParametrosFechamento) (*imovel.Imovel, error) {
	im, err := s.Imoveis.FindByID(imovelID)
	if err != nil {
		return nil, err
	}

	if im.Status != imovel.StatusAtivo {
		return nil, ErrImovelNaoAtivo
	}
	if p.LeadID != nil && p.FechadoPorID == nil {
		return nil, ErrResponsavelObrigatorio
	}
	if im.EhLocacao() {
		if p.DataInicio == nil || p.DataFim == nil {
			return nil, ErrPeriodoObrigatorio
		}
		if !p.DataFim.After(*p.DataInicio) {
			return nil, ErrDataFimInvalida
		}
	}

	inicio := time.Now()
	if p.DataInicio != nil {
		inicio = *p.DataInicio
	}

	im.Status = imovel.StatusFechado
	im.DataFechamento = &inicio
	im.LeadID = p.LeadID
	im.FechadoPorID = p.FechadoPorID
	if p.LeadID != nil {
		im.ValorPeriodo = p.Valor
		im.ComissaoPeriodo = p.Comissao
	} else {
		im.ValorPeriodo = 0
		im.ComissaoPeriodo = 0
	}
	if im.EhLocacao() {
		im.DataFimContrato = p.DataFim
	} else {
		im.DataFimContrato = nil
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Rateios.WithDB(tx).RemoverPorImovel(im.ID); err != nil {
			return err
		}
		return s.Imoveis.WithDB(tx).Update(im)
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao gravar fechamento: %w", err)
	}

	if p.LeadID != nil {
		if err := s.Leads.AtualizarStatus(s.DB, *p.LeadID, lead.StatusNegocioFechado); err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"imovelId": im.ID,
				"leadId":   *p.LeadID,
			}).Error("Fechamento gravado, mas lead não foi atualizado")
			return im, fmt.Errorf("%w: %v", ErrEfeitoParcial, err)
		}
	}

	if s.Notificar {
		notificacao.EnviarWebhookFechamento(im.ID, im.Finalidade, im.ValorPeriodo)
	}
	return im, nil
}

// Reativar transiciona Fechado → Ativo, limpando todos os campos do período.
// O período abandonado não é arquivado no histórico: reativação corrige
// fechamentos indevidos, e arquivá-lo geraria receita fantasma.
func (s *Service) Reativar(imovelID uint) (*imovel.Imovel, error) {
	im, err := s.Imoveis.FindByID(imovelID)
	if err != nil {
		return nil, err
	}
	if im.Status != imovel.StatusFechado {
		return nil, ErrImovelNaoFechado
	}

	im.Status = imovel.StatusAtivo
	im.DataFechamento = nil
	im.LeadID = nil
	im.FechadoPorID = nil
	im.ValorPeriodo = 0
	im.ComissaoPeriodo = 0
	im.DataFimContrato = nil

	if err := s.Imoveis.Update(im); err != nil {
		return nil, fmt.Errorf("erro ao gravar reativação: %w", err)
	}
	return im, nil
}

// ParametrosRenovacao descrevem o novo período de uma locação.
type ParametrosRenovacao struct {
	NovoValor         float64
	NovaComissao      float64
	InicioNovoPeriodo time.Time
	FimNovoPeriodo    time.Time
}

// Renovar fecha o período corrente exatamente onde o novo começa: o registro
// arquivado recebe FimVigencia = início do novo período, o que mantém a cadeia
// do histórico navegável, e sobrescreve os campos do imóvel com o novo
// contrato. Aceita início futuro (renovação pré-agendada).
func (s *Service) Renovar(imovelID uint, p ParametrosRenovacao) (*imovel.Imovel, error) {
	im, err := s.Imoveis.FindByID(imovelID)
	if err != nil {
		return nil, err
	}
	if im.Status != imovel.StatusFechado {
		return nil, ErrImovelNaoFechado
	}
	if !im.EhLocacao() {
		return nil, ErrSomenteLocacao
	}
	if !p.FimNovoPeriodo.After(p.InicioNovoPeriodo) {
		return nil, ErrDataFimInvalida
	}

	if err := s.arquivaEAtualiza(im, p.NovoValor, p.NovaComissao, p.InicioNovoPeriodo, &p.FimNovoPeriodo); err != nil {
		return nil, fmt.Errorf("erro ao gravar renovação: %w", err)
	}
	return im, nil
}

// ParametrosReajuste descrevem um aumento de aluguel no meio do contrato.
type ParametrosReajuste struct {
	NovoValor    float64
	NovaComissao float64
	DataVigencia time.Time
}

// Reajustar é a variante de renovação para reajuste de aluguel: mesmo
// contrato de arquivamento no histórico, mas a data de término permanece e
// uma nota de auditoria é acrescentada às observações do imóvel.
func (s *Service) Reajustar(imovelID uint, p ParametrosReajuste) (*imovel.Imovel, error) {
	im, err := s.Imoveis.FindByID(imovelID)
	if err != nil {
		return nil, err
	}
	if im.Status != imovel.StatusFechado {
		return nil, ErrImovelNaoFechado
	}
	if !im.EhLocacao() {
		return nil, ErrSomenteLocacao
	}
	if p.DataVigencia.IsZero() {
		return nil, ErrDataVigenciaObrigatoria
	}

	nota := fmt.Sprintf("Reajuste em %s: R$ %.2f -> R$ %.2f",
		p.DataVigencia.Format("02/01/2006"), im.ValorPeriodo, p.NovoValor)
	if im.Observacoes != "" {
		im.Observacoes += "\n"
	}
	im.Observacoes += nota

	if err := s.arquivaEAtualiza(im, p.NovoValor, p.NovaComissao, p.DataVigencia, im.DataFimContrato); err != nil {
		return nil, fmt.Errorf("erro ao gravar reajuste: %w", err)
	}
	return im, nil
}

// arquivaEAtualiza grava, numa única transação, o registro do período que se
// encerra e o imóvel já com o novo período.
func (s *Service) arquivaEAtualiza(im *imovel.Imovel, novoValor, novaComissao float64, inicioNovo time.Time, fimNovo *time.Time) error {
	reg := historico.HistoricoFinanceiro{
		ImovelID:    im.ID,
		Tipo:        historico.TipoLocacao,
		Valor:       im.ValorPeriodo,
		Comissao:    im.ComissaoPeriodo,
		FimVigencia: inicioNovo,
	}
	if im.DataFechamento != nil {
		reg.InicioVigencia = *im.DataFechamento
	}

	im.ValorPeriodo = novoValor
	im.ComissaoPeriodo = novaComissao
	im.DataFechamento = &inicioNovo
	im.DataFimContrato = fimNovo

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Historicos.WithDB(tx).Criar(&reg); err != nil {
			return err
		}
		return s.Imoveis.WithDB(tx).Update(im)
	})
}
