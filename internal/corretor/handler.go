// internal/corretor/handler.go
package corretor

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

// NewHandler retorna um handler inicializado
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
	}
}

type criarCorretorRequest struct {
	Nome     string `json:"nome"`
	Apelido  string `json:"apelido"`
	CRECI    string `json:"creci"`
	Email    string `json:"email"`
	Telefone string `json:"telefone"`
	Foto     string `json:"foto"`
}

// Criar trata POST /corretores
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var req criarCorretorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Nome) == "" || strings.TrimSpace(req.CRECI) == "" {
		http.Error(w, "nome e CRECI são obrigatórios", http.StatusBadRequest)
		return
	}

	c := Corretor{
		Nome:     req.Nome,
		Apelido:  req.Apelido,
		CRECI:    req.CRECI,
		Email:    req.Email,
		Telefone: req.Telefone,
		Foto:     req.Foto,
		Ativo:    true,
	}
	if err := h.Repository.Criar(h.DB, &c); err != nil {
		http.Error(w, "Erro ao salvar corretor", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(c)
}

// Listar trata GET /corretores
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repository.Listar(h.DB)
	if err != nil {
		http.Error(w, "Erro ao listar corretores", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// BuscarPorID trata GET /corretores/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	c, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "Corretor não encontrado", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(c)
}
