// internal/vigencia/handler.go
package vigencia

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/vistasoft/api-imoveis/internal/historico"
	"github.com/vistasoft/api-imoveis/internal/imovel"
)

// Handler expõe a consulta de valores vigentes.
type Handler struct {
	Imoveis    *imovel.Repository
	Historicos *historico.Repository
}

// NewHandler cria um novo Handler.
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		Imoveis:    imovel.NewRepository(db),
		Historicos: historico.NewRepository(db),
	}
}

// Consultar trata GET /imoveis/{id}/vigencia?data=AAAA-MM-DD (default: hoje)
func (h *Handler) Consultar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	dataRef := time.Now()
	if s := r.URL.Query().Get("data"); s != "" {
		dataRef, err = time.Parse("2006-01-02", s)
		if err != nil {
			http.Error(w, "data inválida (use AAAA-MM-DD)", http.StatusBadRequest)
			return
		}
	}

	im, err := h.Imoveis.FindByID(uint(id))
	if err != nil {
		http.Error(w, "Imóvel não encontrado", http.StatusNotFound)
		return
	}

	registros, err := h.Historicos.ListarPorImovel(im.ID)
	if err != nil {
		http.Error(w, "Erro ao consultar histórico", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(Resolver(im, registros, dataRef))
}
