package get_user_bookings

import (
	"errors"
	"net/http"

	"github.com/bluebird-hq/Bluebird-DeskService/internal/api/handlers"
	"github.com/bluebird-hq/Bluebird-DeskService/internal/api/middleware"
	"github.com/bluebird-hq/Bluebird-DeskService/internal/service/bookings"
)

const (
	msgRemoteUnavailable = "хранилище бронирований недоступно"
)

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/my?includeCancelled=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		h.logger.Error("GET /bookings/my - No identity in request context")
		handlers.RespondInternalError(w)
		return
	}

	includeCancelled := r.URL.Query().Get("includeCancelled") == "true"

	result, err := h.service.GetUserBookings(r.Context(), user.Email, includeCancelled)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrRemote):
			h.logger.Error("GET /bookings/my - Remote store error: email=%s, error=%v", user.Email, err)
			handlers.RespondBadGateway(w, msgRemoteUnavailable)

		default:
			h.logger.Error("GET /bookings/my - Failed to list bookings: email=%s, error=%v", user.Email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/my - Retrieved %d bookings: email=%s", len(result.Bookings), user.Email)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
