package checkin

import (
	"context"
	"time"

	"github.com/bluebird-hq/Bluebird-DeskService/internal/domain"
	"github.com/bluebird-hq/Bluebird-DeskService/pkg/types"
)

// WorkflowClient интерфейс клиента удалённого хранилища
type WorkflowClient interface {
	GetBookingsByEmail(ctx context.Context, email string) ([]domain.BookingRecord, error)
	GetCheckIns(ctx context.Context, email string, date types.DateString) ([]domain.CheckInRecord, error)
	CreateCheckIn(ctx context.Context, rec domain.CheckInRecord) error
	CheckOut(ctx context.Context, email string, date types.DateString, checkOutTime time.Time) error
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
