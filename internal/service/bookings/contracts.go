package bookings

import (
	"context"

	"github.com/bluebird-hq/Bluebird-DeskService/internal/domain"
)

// WorkflowClient интерфейс клиента удалённого хранилища бронирований
type WorkflowClient interface {
	GetBookingsByEmail(ctx context.Context, email string) ([]domain.BookingRecord, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
