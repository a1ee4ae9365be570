package create_recurring_booking

import (
	"errors"
	"net/http"

	"github.com/bluebird-hq/Bluebird-DeskService/internal/api/handlers"
	"github.com/bluebird-hq/Bluebird-DeskService/internal/api/middleware"
	createRecurring "github.com/bluebird-hq/Bluebird-DeskService/internal/usecase/create_recurring_booking"
	expandRecurrence "github.com/bluebird-hq/Bluebird-DeskService/internal/usecase/expand_recurrence"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные параметры правила повторения"
	msgInvalidRange       = "дата окончания раньше даты начала"
	msgInvalidWeekday     = "допустимы только рабочие дни недели (Пн..Пт)"
	msgDeskNotFound       = "стол не найден"
	msgNoCandidateDates   = "правило повторения не дало ни одной даты"
)

type Handler struct {
	useCase CreateRecurringBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateRecurringBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/recurrence/book
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		h.logger.Error("POST /recurrence/book - No identity in request context")
		handlers.RespondInternalError(w)
		return
	}

	var req CreateRecurringBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /recurrence/book - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(user.Email, user.Name))
	if err != nil {
		switch {
		case errors.Is(err, createRecurring.ErrNoCandidateDates):
			h.logger.Warn("POST /recurrence/book - No candidate dates: start=%s, end=%s, weekdays=%v",
				req.StartDate, req.EndDate, req.Weekdays)
			handlers.RespondBadRequest(w, msgNoCandidateDates)

		case errors.Is(err, expandRecurrence.ErrInvalidRange):
			h.logger.Warn("POST /recurrence/book - Invalid range: start=%s, end=%s", req.StartDate, req.EndDate)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, expandRecurrence.ErrInvalidWeekday):
			h.logger.Warn("POST /recurrence/book - Invalid weekday: weekdays=%v", req.Weekdays)
			handlers.RespondBadRequest(w, msgInvalidWeekday)

		case errors.Is(err, expandRecurrence.ErrDeskNotFound):
			h.logger.Warn("POST /recurrence/book - Desk not found: desk_id=%d", req.DeskID)
			handlers.RespondBadRequest(w, msgDeskNotFound)

		case errors.Is(err, expandRecurrence.ErrInvalidInput), errors.Is(err, createRecurring.ErrInvalidInput):
			h.logger.Warn("POST /recurrence/book - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /recurrence/book - Failed to run recurring booking: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /recurrence/book - Run finished: booked=%d, unavailable=%d, failed=%d, email=%s",
		result.Booked, result.Unavailable, result.Failed, user.Email)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
