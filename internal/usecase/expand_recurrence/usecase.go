package expand_recurrence

import (
	"context"

	"github.com/bluebird-hq/Bluebird-DeskService/internal/domain"
	"github.com/bluebird-hq/Bluebird-DeskService/pkg/types"
)

// UseCase use case разворачивания правила повторения с проверкой доступности.
//
// Разворачивание чистое и детерминированное: календарные дни диапазона
// фильтруются по выбранным будним дням и статическому списку праздников.
// Проверка доступности выполняется последовательно, один запрос хранилища
// на дату - батчинга у read endpoint'а нет.
type UseCase struct {
	workflowClient WorkflowClient
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(workflowClient WorkflowClient, logger Logger) *UseCase {
	return &UseCase{
		workflowClient: workflowClient,
		logger:         logger,
	}
}

// Execute выполняет разворачивание правила и проверку доступности по датам
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ExpandRecurrence: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("ExpandRecurrence: range=%s..%s, weekdays=%v, desk=%d, user=%s",
		req.StartDate, req.EndDate, req.Weekdays, req.DeskID, req.UserEmail)

	// 2. Чистое разворачивание правила
	selection := domain.RecurrenceSelection{
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Weekdays:  req.Weekdays,
	}

	candidates, err := selection.Expand(domain.PublicHolidays)
	if err != nil {
		uc.logger.Error("ExpandRecurrence: expansion failed: %v", err)
		return nil, err
	}

	// 3. Последовательная проверка доступности по датам.
	// Предикаты те же, что у создания бронирования: стол свободен
	// и у пользователя нет активной брони на дату.
	resp := &Response{
		Candidates:  candidates,
		Available:   make([]types.DateString, 0, len(candidates)),
		Unavailable: make([]UnavailableDate, 0),
	}

	for _, date := range candidates {
		records, err := uc.workflowClient.GetBookingsByDate(ctx, date)
		if err != nil {
			// Доступность неизвестна - дата не допускается к бронированию
			uc.logger.Warn("ExpandRecurrence: availability unknown for date=%s: %v", date, err)
			resp.Unavailable = append(resp.Unavailable, UnavailableDate{Date: date, Reason: ReasonAvailabilityUnknown})
			continue
		}

		availability := domain.ResolveAvailability(date, records)

		if availability.UserHoldsBooking(req.UserEmail) {
			resp.Unavailable = append(resp.Unavailable, UnavailableDate{Date: date, Reason: ReasonUserAlreadyBooked})
			continue
		}

		status, ok := availability.DeskByID(req.DeskID)
		if !ok || !status.IsAvailable() {
			resp.Unavailable = append(resp.Unavailable, UnavailableDate{Date: date, Reason: ReasonDeskBooked})
			continue
		}

		resp.Available = append(resp.Available, date)
	}

	uc.logger.Info("ExpandRecurrence: %d candidates, %d available, %d unavailable",
		len(resp.Candidates), len(resp.Available), len(resp.Unavailable))

	return resp, nil
}
