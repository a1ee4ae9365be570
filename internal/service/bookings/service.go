package bookings

import (
	"context"
	"fmt"
	"sort"

	"github.com/bluebird-hq/Bluebird-DeskService/internal/service/bookings/models"
)

// Service сервис чтения бронирований пользователя. Удалённое хранилище -
// единственный источник истины, ответ не кэшируется.
type Service struct {
	workflowClient WorkflowClient
	logger         Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(workflowClient WorkflowClient, logger Logger) *Service {
	return &Service{
		workflowClient: workflowClient,
		logger:         logger,
	}
}

// GetUserBookings возвращает бронирования пользователя по возрастанию даты.
// Отменённые записи включаются только при includeCancelled.
func (s *Service) GetUserBookings(ctx context.Context, email string, includeCancelled bool) (*models.BookingListResponse, error) {
	if email == "" {
		return nil, fmt.Errorf("%w: user email is required", ErrInvalidInput)
	}

	s.logger.Info("GetUserBookings: user=%s, includeCancelled=%t", email, includeCancelled)

	records, err := s.workflowClient.GetBookingsByEmail(ctx, email)
	if err != nil {
		s.logger.Error("GetUserBookings: fetch failed for user=%s: %v", email, err)
		return nil, fmt.Errorf("%w: %v", ErrRemote, err)
	}

	resp := &models.BookingListResponse{Bookings: []models.BookingView{}}
	for i := range records {
		rec := &records[i]
		if !includeCancelled && !rec.IsActive() {
			continue
		}
		resp.Bookings = append(resp.Bookings, models.FromDomainBooking(rec))
	}

	sort.Slice(resp.Bookings, func(i, j int) bool {
		return resp.Bookings[i].Date.IsBefore(resp.Bookings[j].Date)
	})

	s.logger.Info("GetUserBookings: user=%s, %d bookings", email, len(resp.Bookings))
	return resp, nil
}
