package preview_recurrence

import (
	"errors"
	"net/http"

	"github.com/bluebird-hq/Bluebird-DeskService/internal/api/handlers"
	"github.com/bluebird-hq/Bluebird-DeskService/internal/api/middleware"
	expandRecurrence "github.com/bluebird-hq/Bluebird-DeskService/internal/usecase/expand_recurrence"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные параметры правила повторения"
	msgInvalidRange       = "дата окончания раньше даты начала"
	msgInvalidWeekday     = "допустимы только рабочие дни недели (Пн..Пт)"
	msgDeskNotFound       = "стол не найден"
)

type Handler struct {
	useCase ExpandRecurrenceUseCase
	logger  Logger
}

func NewHandler(useCase ExpandRecurrenceUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/recurrence/preview
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		h.logger.Error("POST /recurrence/preview - No identity in request context")
		handlers.RespondInternalError(w)
		return
	}

	var req PreviewRecurrenceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /recurrence/preview - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(user.Email))
	if err != nil {
		switch {
		case errors.Is(err, expandRecurrence.ErrInvalidRange):
			h.logger.Warn("POST /recurrence/preview - Invalid range: start=%s, end=%s", req.StartDate, req.EndDate)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, expandRecurrence.ErrInvalidWeekday):
			h.logger.Warn("POST /recurrence/preview - Invalid weekday: weekdays=%v", req.Weekdays)
			handlers.RespondBadRequest(w, msgInvalidWeekday)

		case errors.Is(err, expandRecurrence.ErrDeskNotFound):
			h.logger.Warn("POST /recurrence/preview - Desk not found: desk_id=%d", req.DeskID)
			handlers.RespondBadRequest(w, msgDeskNotFound)

		case errors.Is(err, expandRecurrence.ErrInvalidInput):
			h.logger.Warn("POST /recurrence/preview - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /recurrence/preview - Failed to expand recurrence: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /recurrence/preview - Expanded rule: candidates=%d, available=%d, email=%s",
		len(result.Candidates), len(result.Available), user.Email)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
