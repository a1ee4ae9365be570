package checkin

import (
	"context"
	"fmt"
	"time"

	"github.com/bluebird-hq/Bluebird-DeskService/internal/domain"
	"github.com/bluebird-hq/Bluebird-DeskService/internal/service/checkin/models"
	"github.com/bluebird-hq/Bluebird-DeskService/pkg/types"
)

// Service сервис дневного чек-ина. Одна концептуальная запись на
// пользователя в день; "уже отмечен" определяется точным строковым
// равенством даты записи и сегодняшней локальной даты. Check-out не
// удаляет запись, а проставляет на ней метку времени.
type Service struct {
	workflowClient WorkflowClient
	timeProvider   TimeProvider
	logger         Logger
}

// NewService создает новый экземпляр сервиса чек-ина
func NewService(workflowClient WorkflowClient, logger Logger) *Service {
	return &Service{
		workflowClient: workflowClient,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Status возвращает статус чек-ина пользователя на сегодня вместе со списком
// его сегодняшних бронирований, ещё не превращённых в чек-ин
func (s *Service) Status(ctx context.Context, email string) (*models.StatusResponse, error) {
	if email == "" {
		return nil, fmt.Errorf("%w: user email is required", ErrInvalidInput)
	}

	today := types.NewDateString(s.timeProvider.Now())
	s.logger.Info("CheckinStatus: user=%s, date=%s", email, today)

	record, err := s.todayRecord(ctx, email, today)
	if err != nil {
		return nil, err
	}

	resp := &models.StatusResponse{Date: today, TodayBookings: []models.TodayBooking{}}
	if record != nil {
		resp.CheckedIn = true
		resp.CheckedOut = record.HasCheckedOut()
		resp.Location = record.Location
	}

	// Бронирования на сегодня показываем только пока чек-ина нет
	if !resp.CheckedIn {
		bookings, err := s.workflowClient.GetBookingsByEmail(ctx, email)
		if err != nil {
			s.logger.Error("CheckinStatus: failed to fetch bookings for user=%s: %v", email, err)
			return nil, fmt.Errorf("%w: %v", ErrRemote, err)
		}
		for i := range bookings {
			rec := &bookings[i]
			if rec.Date == today && rec.IsActive() && !rec.IsCheckedIn() {
				resp.TodayBookings = append(resp.TodayBookings, models.FromDomainBooking(rec))
			}
		}
	}

	s.logger.Info("CheckinStatus: user=%s checkedIn=%t bookings=%d", email, resp.CheckedIn, len(resp.TodayBookings))
	return resp, nil
}

// CheckIn создает сегодняшнюю запись чек-ина пользователя.
// Для любой локации, кроме офиса, стол в записи обнуляется.
func (s *Service) CheckIn(ctx context.Context, email, name string, req *models.CheckInRequest) (*models.CheckInResponse, error) {
	if email == "" {
		return nil, fmt.Errorf("%w: user email is required", ErrInvalidInput)
	}
	if req.Location == "" {
		return nil, fmt.Errorf("%w: location is required", ErrInvalidInput)
	}
	if req.DeskID != 0 && !domain.IsValidDeskID(req.DeskID) {
		return nil, fmt.Errorf("%w: desk id %d", ErrInvalidInput, req.DeskID)
	}

	today := types.NewDateString(s.timeProvider.Now())
	s.logger.Info("CheckIn: user=%s, date=%s, location=%s, desk=%d", email, today, req.Location, req.DeskID)

	record, err := s.todayRecord(ctx, email, today)
	if err != nil {
		return nil, err
	}
	if record != nil {
		s.logger.Warn("CheckIn: user=%s already checked in on %s", email, today)
		return nil, ErrAlreadyCheckedIn
	}

	deskID := domain.NormalizeDeskID(req.DeskID, req.Location)

	err = s.workflowClient.CreateCheckIn(ctx, domain.CheckInRecord{
		DeskID:    deskID,
		UserEmail: email,
		UserName:  name,
		Location:  req.Location,
		Date:      today,
	})
	if err != nil {
		s.logger.Error("CheckIn: write failed for user=%s: %v", email, err)
		return nil, fmt.Errorf("%w: %v", ErrRemote, err)
	}

	s.logger.Info("CheckIn: user=%s checked in at %s (desk=%d)", email, req.Location, deskID)
	return &models.CheckInResponse{Date: today, DeskID: deskID, Location: req.Location}, nil
}

// CheckOut проставляет метку времени check-out на сегодняшней записи
func (s *Service) CheckOut(ctx context.Context, email string) (*models.CheckOutResponse, error) {
	if email == "" {
		return nil, fmt.Errorf("%w: user email is required", ErrInvalidInput)
	}

	now := s.timeProvider.Now()
	today := types.NewDateString(now)
	s.logger.Info("CheckOut: user=%s, date=%s", email, today)

	record, err := s.todayRecord(ctx, email, today)
	if err != nil {
		return nil, err
	}
	if record == nil {
		s.logger.Warn("CheckOut: user=%s has no check-in on %s", email, today)
		return nil, ErrNotCheckedIn
	}
	if record.HasCheckedOut() {
		s.logger.Warn("CheckOut: user=%s already checked out on %s", email, today)
		return nil, ErrAlreadyCheckedOut
	}

	if err := s.workflowClient.CheckOut(ctx, email, today, now); err != nil {
		s.logger.Error("CheckOut: write failed for user=%s: %v", email, err)
		return nil, fmt.Errorf("%w: %v", ErrRemote, err)
	}

	s.logger.Info("CheckOut: user=%s checked out on %s", email, today)
	return &models.CheckOutResponse{Date: today, CheckOutTime: now.Format(time.RFC3339)}, nil
}

// todayRecord возвращает сегодняшнюю запись чек-ина пользователя или nil.
// Фильтрация по дате выполняется локально точным строковым равенством:
// записи со сдвинутой зоной представлением даты сегодняшними не считаются.
func (s *Service) todayRecord(ctx context.Context, email string, today types.DateString) (*domain.CheckInRecord, error) {
	records, err := s.workflowClient.GetCheckIns(ctx, email, today)
	if err != nil {
		s.logger.Error("Checkin: failed to fetch check-ins for user=%s: %v", email, err)
		return nil, fmt.Errorf("%w: %v", ErrRemote, err)
	}

	for i := range records {
		if records[i].IsForDate(today) {
			return &records[i], nil
		}
	}
	return nil, nil
}
