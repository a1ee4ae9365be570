package create_recurring_booking

import (
	"context"
	"sort"

	createBooking "github.com/bluebird-hq/Bluebird-DeskService/internal/usecase/create_booking"
	expandRecurrence "github.com/bluebird-hq/Bluebird-DeskService/internal/usecase/expand_recurrence"
)

// UseCase use case повторяющегося бронирования: разворачивает правило,
// прогоняет проверку доступности и затем последовательно отправляет запись
// на каждую принятую дату. Отказ одной даты не прерывает прогон и не
// откатывает уже записанные даты - итог отражается счётчиками.
type UseCase struct {
	expander  RecurrenceExpander
	submitter BookingSubmitter
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(expander RecurrenceExpander, submitter BookingSubmitter, logger Logger) *UseCase {
	return &UseCase{
		expander:  expander,
		submitter: submitter,
		logger:    logger,
	}
}

// Execute выполняет прогон повторяющегося бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateRecurringBooking: range=%s..%s, desk=%d, user=%s",
		req.StartDate, req.EndDate, req.DeskID, req.UserEmail)

	// 1. Разворачиваем правило и проверяем доступность по датам
	expansion, err := uc.expander.Execute(ctx, &expandRecurrence.Request{
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Weekdays:  req.Weekdays,
		DeskID:    req.DeskID,
		UserEmail: req.UserEmail,
	})
	if err != nil {
		uc.logger.Warn("CreateRecurringBooking: expansion failed: %v", err)
		return nil, err
	}

	if len(expansion.Candidates) == 0 {
		uc.logger.Warn("CreateRecurringBooking: rule produced no dates")
		return nil, ErrNoCandidateDates
	}

	resp := &Response{
		Results: make([]DateResult, 0, len(expansion.Candidates)),
	}

	// 2. Недоступные даты попадают в итог сразу, без попытки записи
	for _, u := range expansion.Unavailable {
		resp.Unavailable++
		resp.Results = append(resp.Results, DateResult{
			Date:    u.Date,
			Outcome: OutcomeUnavailable,
			Reason:  u.Reason,
		})
	}

	// 3. Последовательная запись принятых дат
	for _, date := range expansion.Available {
		_, err := uc.submitter.Execute(ctx, &createBooking.Request{
			Date:      date,
			DeskID:    req.DeskID,
			UserEmail: req.UserEmail,
			UserName:  req.UserName,
		})
		if err != nil {
			uc.logger.Warn("CreateRecurringBooking: date=%s failed: %v", date, err)
			resp.Failed++
			resp.Results = append(resp.Results, DateResult{
				Date:    date,
				Outcome: OutcomeFailed,
				Reason:  err.Error(),
			})
			continue
		}

		resp.Booked++
		resp.Results = append(resp.Results, DateResult{Date: date, Outcome: OutcomeBooked})
	}

	// Итог в календарном порядке
	sort.Slice(resp.Results, func(i, j int) bool {
		return resp.Results[i].Date.IsBefore(resp.Results[j].Date)
	})

	uc.logger.Info("CreateRecurringBooking: booked=%d, unavailable=%d, failed=%d",
		resp.Booked, resp.Unavailable, resp.Failed)

	return resp, nil
}
