// internal/historico/handler.go
package historico

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Handler expõe consulta ao histórico (somente leitura).
type Handler struct {
	Repo *Repository
}

// NewHandler cria um novo Handler.
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{Repo: NewRepository(db)}
}

// ListarPorImovel trata GET /imoveis/{id}/historico
func (h *Handler) ListarPorImovel(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	list, err := h.Repo.ListarPorImovel(uint(id))
	if err != nil {
		http.Error(w, "Erro ao listar histórico", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}
