// internal/transacao/handler.go
package transacao

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Handler expõe as operações do ciclo transacional via HTTP.
type Handler struct {
	Service *Service
}

// NewHandler cria um novo Handler.
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{Service: NewService(db)}
}

// Fechar trata POST /imoveis/{id}/fechar
func (h *Handler) Fechar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	var dto FecharDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}

	inicio, err := parseDataOpcional(dto.DataInicio)
	if err != nil {
		http.Error(w, "dataInicio inválida (use AAAA-MM-DD)", http.StatusBadRequest)
		return
	}
	fim, err := parseDataOpcional(dto.DataFim)
	if err != nil {
		http.Error(w, "dataFim inválida (use AAAA-MM-DD)", http.StatusBadRequest)
		return
	}

	im, err := h.Service.Fechar(uint(id), ParametrosFechamento{
		LeadID:       dto.LeadID,
		FechadoPorID: dto.FechadoPorID,
		Valor:        dto.Valor,
		Comissao:     dto.Comissao,
		DataInicio:   inicio,
		DataFim:      fim,
	})
	responde(w, im, err)
}

// Reativar trata POST /imoveis/{id}/reativar
func (h *Handler) Reativar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	im, err := h.Service.Reativar(uint(id))
	responde(w, im, err)
}

// Renovar trata POST /imoveis/{id}/renovar
func (h *Handler) Renovar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	var dto RenovarDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}

	inicio, err := time.Parse("2006-01-02", dto.NovoInicio)
	if err != nil {
		http.Error(w, "novoInicio inválido (use AAAA-MM-DD)", http.StatusBadRequest)
		return
	}
	fim, err := time.Parse("2006-01-02", dto.NovoFim)
	if err != nil {
		http.Error(w, "novoFim inválido (use AAAA-MM-DD)", http.StatusBadRequest)
		return
	}

	im, err := h.Service.Renovar(uint(id), ParametrosRenovacao{
		NovoValor:         dto.NovoValor,
		NovaComissao:      dto.NovaComissao,
		InicioNovoPeriodo: inicio,
		FimNovoPeriodo:    fim,
	})
	responde(w, im, err)
}

// Reajustar trata POST /imoveis/{id}/reajustar
func (h *Handler) Reajustar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	var dto ReajustarDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}

	vigencia, err := time.Parse("2006-01-02", dto.DataVigencia)
	if err != nil {
		http.Error(w, "dataVigencia inválida (use AAAA-MM-DD)", http.StatusBadRequest)
		return
	}

	im, err := h.Service.Reajustar(uint(id), ParametrosReajuste{
		NovoValor:    dto.NovoValor,
		NovaComissao: dto.NovaComissao,
		DataVigencia: vigencia,
	})
	responde(w, im, err)
}

func parseDataOpcional(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

var errosDeValidacao = []error{
	ErrImovelNaoAtivo,
	ErrImovelNaoFechado,
	ErrResponsavelObrigatorio,
	ErrPeriodoObrigatorio,
	ErrDataFimInvalida,
	ErrSomenteLocacao,
	ErrDataVigenciaObrigatoria,
}

func responde(w http.ResponseWriter, im interface{}, err error) {
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "Imóvel não encontrado", http.StatusNotFound)
			return
		}
		for _, ev := range errosDeValidacao {
			if errors.Is(err, ev) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
		}
		if errors.Is(err, ErrEfeitoParcial) {
			// Fechamento gravado; o aviso de aplicação parcial segue no corpo.
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		http.Error(w, "Erro ao executar operação", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(im)
}
