package create_booking

import (
	"context"
	"time"

	"github.com/bluebird-hq/Bluebird-DeskService/internal/domain"
	"github.com/bluebird-hq/Bluebird-DeskService/internal/integrations/workflow"
	"github.com/bluebird-hq/Bluebird-DeskService/pkg/types"
)

// WorkflowClient интерфейс клиента удалённого хранилища бронирований
type WorkflowClient interface {
	GetBookingsByDate(ctx context.Context, date types.DateString) ([]domain.BookingRecord, error)
	CreateBooking(ctx context.Context, req workflow.CreateBookingRequest) error
}

// SnapshotStore интерфейс хранилища снапшотов для двухфазного обновления
type SnapshotStore interface {
	Begin(date types.DateString) uint64
	Publish(date types.DateString, generation uint64, availability domain.Availability) bool
	MarkTentative(date types.DateString, deskID int, occupant domain.Occupant) error
	Confirm(date types.DateString, deskID int) error
	Rollback(date types.DateString, deskID int) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
