package check_in

import (
	"errors"
	"net/http"

	"github.com/bluebird-hq/Bluebird-DeskService/internal/api/handlers"
	"github.com/bluebird-hq/Bluebird-DeskService/internal/api/middleware"
	"github.com/bluebird-hq/Bluebird-DeskService/internal/service/checkin"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные чек-ина"
	msgAlreadyCheckedIn   = "вы уже отметились сегодня"
	msgRemoteUnavailable  = "хранилище чек-инов недоступно, чек-ин не выполнен"
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

// Handle POST /api/v1/checkin
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		h.logger.Error("POST /checkin - No identity in request context")
		handlers.RespondInternalError(w)
		return
	}

	var req CheckInRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /checkin - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CheckIn(r.Context(), user.Email, user.Name, req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, checkin.ErrAlreadyCheckedIn):
			h.logger.Warn("POST /checkin - Already checked in: email=%s", user.Email)
			handlers.RespondConflict(w, msgAlreadyCheckedIn)

		case errors.Is(err, checkin.ErrInvalidInput):
			h.logger.Warn("POST /checkin - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, checkin.ErrRemote):
			h.logger.Error("POST /checkin - Remote store error: email=%s, error=%v", user.Email, err)
			handlers.RespondBadGateway(w, msgRemoteUnavailable)

		default:
			h.logger.Error("POST /checkin - Failed to check in: email=%s, error=%v", user.Email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /checkin - Checked in: email=%s, location=%s, desk_id=%d",
		user.Email, result.Location, result.DeskID)
	handlers.RespondJSON(w, http.StatusCreated, FromServiceResponse(result))
}
