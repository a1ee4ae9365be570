package get_desks

import (
	"net/http"

	"github.com/bluebird-hq/Bluebird-DeskService/internal/api/handlers"
)

type Handler struct {
	logger Logger
}

func NewHandler(logger Logger) *Handler {
	return &Handler{logger: logger}
}

// Handle GET /api/v1/desks
// Инвентарь статичен и определён на этапе сборки, обработчик не ходит
// во внешние сервисы.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, InventoryResponse())
}
