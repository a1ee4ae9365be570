package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/bluebird-hq/Bluebird-DeskService/internal/domain"
	"github.com/bluebird-hq/Bluebird-DeskService/internal/service/reports/models"
	"github.com/bluebird-hq/Bluebird-DeskService/pkg/types"
)

// MaxReportRangeDays максимальная длина периода отчёта.
// Один день периода стоит один запрос к удалённому хранилищу,
// поэтому период ограничен кварталом.
const MaxReportRangeDays = 92

// Service сервис отчётов об использовании столов. Агрегаты считаются
// по записям удалённого хранилища, по одному последовательному запросу
// на каждый день периода. Дни, для которых fetch не удался, исключаются
// из агрегатов и перечисляются в отчёте отдельно.
type Service struct {
	workflowClient WorkflowClient
	logger         Logger
}

// NewService создает новый экземпляр сервиса отчётов
func NewService(workflowClient WorkflowClient, logger Logger) *Service {
	return &Service{
		workflowClient: workflowClient,
		logger:         logger,
	}
}

// Usage строит отчёт об использовании столов за период
func (s *Service) Usage(ctx context.Context, req *models.UsageRequest) (*models.UsageResponse, error) {
	if err := validateRange(req); err != nil {
		s.logger.Warn("UsageReport: validation failed: %v", err)
		return nil, err
	}

	s.logger.Info("UsageReport: period=%s..%s", req.From, req.To)

	perDesk := make(map[int]int, domain.TotalDesks)
	resp := &models.UsageResponse{
		From:         req.From,
		To:           req.To,
		SkippedDates: []types.DateString{},
	}

	current := req.From
	for !current.IsAfter(req.To) {
		next, err := current.AddDays(1)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}

		wd, err := current.Weekday()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
		// Выходные не входят в ёмкость: инвентарь бронируется по будням
		if wd == time.Saturday || wd == time.Sunday {
			current = next
			continue
		}

		records, err := s.workflowClient.GetBookingsByDate(ctx, current)
		if err != nil {
			s.logger.Warn("UsageReport: skipping date=%s, fetch failed: %v", current, err)
			resp.SkippedDates = append(resp.SkippedDates, current)
			current = next
			continue
		}

		resp.WorkingDays++
		for i := range records {
			rec := &records[i]
			if rec.Date != current || !rec.IsActive() || !domain.IsValidDeskID(rec.DeskID) {
				continue
			}
			resp.TotalBookings++
			perDesk[rec.DeskID]++
		}

		current = next
	}

	// Агрегаты по столам в порядке инвентаря
	busiest := 0
	for _, desk := range domain.Inventory() {
		count := perDesk[desk.ID]
		resp.Desks = append(resp.Desks, models.DeskUsage{
			DeskID:   desk.ID,
			DeskName: desk.Name,
			Bookings: count,
		})
		if count > 0 && (busiest == 0 || count > perDesk[busiest]) {
			busiest = desk.ID
		}
	}
	resp.BusiestDeskID = busiest

	if resp.WorkingDays > 0 {
		capacity := resp.WorkingDays * domain.TotalDesks
		resp.UtilizationRate = float64(resp.TotalBookings) / float64(capacity) * 100
	}

	s.logger.Info("UsageReport: period=%s..%s, workingDays=%d, bookings=%d, utilization=%.1f%%, skipped=%d",
		req.From, req.To, resp.WorkingDays, resp.TotalBookings, resp.UtilizationRate, len(resp.SkippedDates))

	return resp, nil
}

// validateRange валидирует период отчёта
func validateRange(req *models.UsageRequest) error {
	if req.From.IsZero() || req.To.IsZero() {
		return fmt.Errorf("%w: from and to dates are required", ErrInvalidInput)
	}
	if err := req.From.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := req.To.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if req.To.IsBefore(req.From) {
		return ErrInvalidRange
	}

	days, err := req.From.DaysBetween(req.To)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
	if days > MaxReportRangeDays {
		return fmt.Errorf("%w: period longer than %d days", ErrInvalidRange, MaxReportRangeDays)
	}

	return nil
}
