package create_booking

import (
	"errors"
	"net/http"

	"github.com/bluebird-hq/Bluebird-DeskService/internal/api/handlers"
	"github.com/bluebird-hq/Bluebird-DeskService/internal/api/middleware"
	createBooking "github.com/bluebird-hq/Bluebird-DeskService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidInput        = "некорректные данные бронирования"
	msgDateInPast          = "дата бронирования уже прошла"
	msgDateTooFar          = "дата бронирования слишком далеко в будущем"
	msgDeskNotFound        = "стол не найден"
	msgAvailabilityUnknown = "хранилище бронирований недоступно, бронирование не выполнено"
	msgDeskAlreadyBooked   = "стол уже занят на выбранную дату"
	msgUserAlreadyBooked   = "у вас уже есть бронирование на эту дату"
	msgSubmitFailed        = "не удалось записать бронирование"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		h.logger.Error("POST /bookings - No identity in request context")
		handlers.RespondInternalError(w)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(user.Email, user.Name))
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrDeskAlreadyBooked):
			h.logger.Warn("POST /bookings - Desk already booked: desk_id=%d, date=%s", req.DeskID, req.Date)
			handlers.RespondConflict(w, msgDeskAlreadyBooked)

		case errors.Is(err, createBooking.ErrUserAlreadyBooked):
			h.logger.Warn("POST /bookings - User already booked: email=%s, date=%s", user.Email, req.Date)
			handlers.RespondConflict(w, msgUserAlreadyBooked)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Date in the past: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createBooking.ErrDateTooFarInFuture):
			h.logger.Warn("POST /bookings - Date too far in future: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, createBooking.ErrDeskNotFound):
			h.logger.Warn("POST /bookings - Desk not found: desk_id=%d", req.DeskID)
			handlers.RespondBadRequest(w, msgDeskNotFound)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createBooking.ErrAvailabilityUnknown):
			h.logger.Error("POST /bookings - Availability unknown: date=%s, error=%v", req.Date, err)
			handlers.RespondBadGateway(w, msgAvailabilityUnknown)

		case errors.Is(err, createBooking.ErrSubmitFailed):
			h.logger.Error("POST /bookings - Booking write failed: desk_id=%d, date=%s, error=%v",
				req.DeskID, req.Date, err)
			handlers.RespondBadGateway(w, msgSubmitFailed)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: desk_id=%d, date=%s, error=%v",
				req.DeskID, req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: request_id=%s, desk_id=%d, date=%s, email=%s",
		result.RequestID, result.DeskID, result.Date, user.Email)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
