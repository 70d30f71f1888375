// internal/rateio/handler.go
package rateio

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"

	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/vistasoft/api-imoveis/internal/corretor"
	"github.com/vistasoft/api-imoveis/internal/imovel"
)

// Handler gerencia a tela de distribuição de comissão de um imóvel.
type Handler struct {
	DB      *gorm.DB
	Repo    *Repository
	Imoveis *imovel.Repository
}

// NewHandler cria um novo Handler.
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:      db,
		Repo:    NewRepository(db),
		Imoveis: imovel.NewRepository(db),
	}
}

// ListarPorImovel trata GET /imoveis/{id}/rateios.
// Sem distribuição gravada para um imóvel fechado, devolve a sugestão padrão
// (não persistida) com os nomes já resolvidos.
func (h *Handler) ListarPorImovel(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	im, err := h.Imoveis.FindByID(uint(id))
	if err != nil {
		http.Error(w, "Imóvel não encontrado", http.StatusNotFound)
		return
	}

	salvos, err := h.Repo.ListarPorImovel(im.ID)
	if err != nil {
		http.Error(w, "Erro ao listar rateios", http.StatusInternalServerError)
		return
	}

	resp := ListaRateiosDTO{Rateios: salvos}
	if len(salvos) == 0 && im.Status == imovel.StatusFechado {
		nomeCorretor := ""
		if im.FechadoPorID != nil {
			nomeCorretor = corretor.NomeExibicao(h.DB, *im.FechadoPorID)
		}
		resp.Rateios = RateiosPadrao(im.ID, nomeImobiliaria(), im.FechadoPorID, nomeCorretor, im.ComissaoPeriodo)
		resp.Sugestao = true
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

// Salvar trata PUT /imoveis/{id}/rateios: substituição da lista inteira,
// validada contra a soma de 100% antes de qualquer escrita.
func (h *Handler) Salvar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	im, err := h.Imoveis.FindByID(uint(id))
	if err != nil {
		http.Error(w, "Imóvel não encontrado", http.StatusNotFound)
		return
	}

	var dto SalvarRateiosDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}

	rateios := make([]RateioComissao, 0, len(dto.Rateios))
	for _, d := range dto.Rateios {
		if d.TipoBeneficiario != TipoImobiliaria && d.TipoBeneficiario != TipoCorretor {
			http.Error(w, "tipo de beneficiário inválido", http.StatusBadRequest)
			return
		}
		novo := RateioComissao{
			ImovelID:         im.ID,
			TipoBeneficiario: d.TipoBeneficiario,
			BeneficiarioID:   d.BeneficiarioID,
			NomeBeneficiario: d.NomeBeneficiario,
		}
		rateios, err = AdicionarBeneficiario(rateios, novo)
		if err != nil {
			if errors.Is(err, ErrBeneficiarioDuplicado) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "Erro ao montar rateios", http.StatusInternalServerError)
			return
		}
		i := len(rateios) - 1
		rateios[i].Percentual = d.Percentual
		rateios[i].Valor = d.Valor
	}

	if !SomaValida(rateios, 0) {
		http.Error(w, fmt.Sprintf("percentuais devem somar 100%% (tolerância de %.2f p.p.)", Tolerancia()), http.StatusBadRequest)
		return
	}

	NormalizarParaPersistencia(rateios)
	if err := h.Repo.SubstituirPorImovel(im.ID, rateios); err != nil {
		http.Error(w, "Erro ao salvar rateios", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(rateios)
}

func nomeImobiliaria() string {
	if n := os.Getenv("IMOBILIARIA_NOME"); n != "" {
		return n
	}
	return "Imobiliária"
}
