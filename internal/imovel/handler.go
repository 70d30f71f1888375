// internal/imovel/handler.go
package imovel

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Handler gerencia as rotas de cadastro de imóveis. As transições de ciclo de
// vida (fechar, reativar, renovar, reajustar) ficam em internal/transacao.
type Handler struct {
	Repo *Repository
}

// NewHandler cria um novo Handler.
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{Repo: NewRepository(db)}
}

// Criar trata POST /imoveis
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var dto CriarImovelDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}

	switch strings.TrimSpace(dto.Finalidade) {
	case FinalidadeVenda, FinalidadeLocacaoAnual, FinalidadeLocacaoTemporada:
	default:
		http.Error(w, "finalidade inválida", http.StatusBadRequest)
		return
	}

	im := Imovel{
		Titulo:       dto.Titulo,
		Finalidade:   dto.Finalidade,
		ValorAnuncio: dto.ValorAnuncio,
		Status:       StatusAtivo,
		Observacoes:  dto.Observacoes,
	}
	if err := h.Repo.Create(&im); err != nil {
		http.Error(w, "Erro ao salvar imóvel", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(im)
}

// Listar trata GET /imoveis (filtro opcional ?status=)
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repo.List(r.URL.Query().Get("status"))
	if err != nil {
		http.Error(w, "Erro ao listar imóveis", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// BuscarPorID trata GET /imoveis/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	im, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "Imóvel não encontrado", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(im)
}

// Atualizar trata PUT /imoveis/{id} (dados cadastrais apenas)
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	im, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "Imóvel não encontrado", http.StatusNotFound)
		return
	}

	var dto AtualizarImovelDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}

	if dto.Titulo != nil {
		im.Titulo = *dto.Titulo
	}
	if dto.ValorAnuncio != nil {
		im.ValorAnuncio = *dto.ValorAnuncio
	}
	if dto.Observacoes != nil {
		im.Observacoes = *dto.Observacoes
	}

	if err := h.Repo.Update(im); err != nil {
		http.Error(w, "Erro ao atualizar imóvel", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(im)
}

// Deletar trata DELETE /imoveis/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	if err := h.Repo.Delete(uint(id)); err != nil {
		if err == gorm.ErrRecordNotFound {
			http.Error(w, "Imóvel não encontrado", http.StatusNotFound)
			return
		}
		http.Error(w, "Erro ao remover imóvel", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
