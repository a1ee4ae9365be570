package get_usage_report

import (
	"errors"
	"net/http"

	"github.com/bluebird-hq/Bluebird-DeskService/internal/api/handlers"
	"github.com/bluebird-hq/Bluebird-DeskService/internal/service/reports"
	"github.com/bluebird-hq/Bluebird-DeskService/internal/service/reports/models"
	"github.com/bluebird-hq/Bluebird-DeskService/pkg/types"
)

const (
	msgMissingRange = "параметры from и to обязательны"
	msgInvalidDate  = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidRange = "некорректный период отчёта"
)

type Handler struct {
	service ReportsService
	logger  Logger
}

func NewHandler(service ReportsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/reports/usage?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	from := types.DateString(r.URL.Query().Get("from"))
	to := types.DateString(r.URL.Query().Get("to"))

	if from.IsZero() || to.IsZero() {
		h.logger.Warn("GET /reports/usage - Missing range: from=%q, to=%q", from, to)
		handlers.RespondBadRequest(w, msgMissingRange)
		return
	}
	if err := from.Validate(); err != nil {
		h.logger.Warn("GET /reports/usage - Invalid from date: %q", from)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	if err := to.Validate(); err != nil {
		h.logger.Warn("GET /reports/usage - Invalid to date: %q", to)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.Usage(r.Context(), &models.UsageRequest{From: from, To: to})
	if err != nil {
		switch {
		case errors.Is(err, reports.ErrInvalidRange):
			h.logger.Warn("GET /reports/usage - Invalid range: from=%s, to=%s", from, to)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, reports.ErrInvalidInput):
			h.logger.Warn("GET /reports/usage - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRange)

		default:
			h.logger.Error("GET /reports/usage - Failed to build report: from=%s, to=%s, error=%v", from, to, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /reports/usage - Report built: from=%s, to=%s, bookings=%d, skipped=%d",
		from, to, result.TotalBookings, len(result.SkippedDates))
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
