package cancel_booking

import (
	"errors"
	"net/http"

	"github.com/bluebird-hq/Bluebird-DeskService/internal/api/handlers"
	"github.com/bluebird-hq/Bluebird-DeskService/internal/api/middleware"
	cancelBooking "github.com/bluebird-hq/Bluebird-DeskService/internal/usecase/cancel_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные отмены"
	msgBookingNotFound    = "активное бронирование не найдено"
	msgCancelFailed       = "не удалось отменить бронирование"
)

type Handler struct {
	useCase CancelBookingUseCase
	logger  Logger
}

func NewHandler(useCase CancelBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		h.logger.Error("POST /bookings/cancel - No identity in request context")
		handlers.RespondInternalError(w)
		return
	}

	var req CancelBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(user.Email))
	if err != nil {
		switch {
		case errors.Is(err, cancelBooking.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/cancel - Booking not found: desk_id=%d, date=%s, email=%s",
				req.DeskID, req.Date, user.Email)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, cancelBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings/cancel - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, cancelBooking.ErrCancelFailed):
			h.logger.Error("POST /bookings/cancel - Cancellation failed: desk_id=%d, date=%s, error=%v",
				req.DeskID, req.Date, err)
			handlers.RespondBadGateway(w, msgCancelFailed)

		default:
			h.logger.Error("POST /bookings/cancel - Failed to cancel booking: desk_id=%d, date=%s, error=%v",
				req.DeskID, req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/cancel - Booking cancelled: desk_id=%d, date=%s, email=%s",
		result.DeskID, result.Date, user.Email)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
