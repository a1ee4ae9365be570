package check_out

import (
	"errors"
	"net/http"

	"github.com/bluebird-hq/Bluebird-DeskService/internal/api/handlers"
	"github.com/bluebird-hq/Bluebird-DeskService/internal/api/middleware"
	"github.com/bluebird-hq/Bluebird-DeskService/internal/service/checkin"
)

const (
	msgNotCheckedIn      = "вы ещё не отметились сегодня"
	msgAlreadyCheckedOut = "вы уже завершили день"
	msgRemoteUnavailable = "хранилище чек-инов недоступно, check-out не выполнен"
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

// Handle POST /api/v1/checkout
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		h.logger.Error("POST /checkout - No identity in request context")
		handlers.RespondInternalError(w)
		return
	}

	result, err := h.service.CheckOut(r.Context(), user.Email)
	if err != nil {
		switch {
		case errors.Is(err, checkin.ErrNotCheckedIn):
			h.logger.Warn("POST /checkout - Not checked in: email=%s", user.Email)
			handlers.RespondConflict(w, msgNotCheckedIn)

		case errors.Is(err, checkin.ErrAlreadyCheckedOut):
			h.logger.Warn("POST /checkout - Already checked out: email=%s", user.Email)
			handlers.RespondConflict(w, msgAlreadyCheckedOut)

		case errors.Is(err, checkin.ErrRemote):
			h.logger.Error("POST /checkout - Remote store error: email=%s, error=%v", user.Email, err)
			handlers.RespondBadGateway(w, msgRemoteUnavailable)

		default:
			h.logger.Error("POST /checkout - Failed to check out: email=%s, error=%v", user.Email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /checkout - Checked out: email=%s, time=%s", user.Email, result.CheckOutTime)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
