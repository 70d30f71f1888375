// internal/lead/handler.go
package lead

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Handler encapsula DB e repository
type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

// NewHandler cria um novo handler de leads
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
	}
}

type criarLeadRequest struct {
	Nome     string `json:"nome"`
	Email    string `json:"email"`
	Telefone string `json:"telefone"`
}

type atualizarStatusRequest struct {
	Status string `json:"status"`
}

// Criar trata POST /leads
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var req criarLeadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Nome) == "" {
		http.Error(w, "nome é obrigatório", http.StatusBadRequest)
		return
	}

	l := Lead{
		Nome:     req.Nome,
		Email:    req.Email,
		Telefone: req.Telefone,
		Status:   StatusNovo,
	}
	if err := h.Repository.Criar(h.DB, &l); err != nil {
		http.Error(w, "Erro ao salvar lead", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(l)
}

// Listar trata GET /leads
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	leads, err := h.Repository.Listar(h.DB)
	if err != nil {
		http.Error(w, "Erro ao listar leads", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(leads)
}

// BuscarPorID trata GET /leads/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	l, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "Lead não encontrado", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(l)
}

// AtualizarStatus trata PATCH /leads/{id}/status
func (h *Handler) AtualizarStatus(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var req atualizarStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}

	switch req.Status {
	case StatusNovo, StatusEmAtendimento, StatusNegocioFechado, StatusDescartado:
	default:
		http.Error(w, "status inválido", http.StatusBadRequest)
		return
	}

	if err := h.Repository.AtualizarStatus(h.DB, uint(id), req.Status); err != nil {
		if err == gorm.ErrRecordNotFound {
			http.Error(w, "Lead não encontrado", http.StatusNotFound)
			return
		}
		http.Error(w, "Erro ao atualizar status", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
