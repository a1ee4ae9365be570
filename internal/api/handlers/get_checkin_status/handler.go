package get_checkin_status

import (
	"errors"
	"net/http"

	"github.com/bluebird-hq/Bluebird-DeskService/internal/api/handlers"
	"github.com/bluebird-hq/Bluebird-DeskService/internal/api/middleware"
	"github.com/bluebird-hq/Bluebird-DeskService/internal/service/checkin"
)

const (
	msgRemoteUnavailable = "хранилище чек-инов недоступно"
)

type Handler struct {
	service CheckInService
	logger  Logger
}

func NewHandler(service CheckInService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/checkin/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		h.logger.Error("GET /checkin/status - No identity in request context")
		handlers.RespondInternalError(w)
		return
	}

	result, err := h.service.Status(r.Context(), user.Email)
	if err != nil {
		switch {
		case errors.Is(err, checkin.ErrRemote):
			h.logger.Error("GET /checkin/status - Remote store error: email=%s, error=%v", user.Email, err)
			handlers.RespondBadGateway(w, msgRemoteUnavailable)

		default:
			h.logger.Error("GET /checkin/status - Failed to get status: email=%s, error=%v", user.Email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /checkin/status - Status retrieved: email=%s, checked_in=%t", user.Email, result.CheckedIn)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
