package cancel_booking

import (
	"context"

	"github.com/bluebird-hq/Bluebird-DeskService/internal/domain"
	"github.com/bluebird-hq/Bluebird-DeskService/pkg/types"
)

// WorkflowClient интерфейс клиента удалённого хранилища бронирований
type WorkflowClient interface {
	GetBookingsByEmail(ctx context.Context, email string) ([]domain.BookingRecord, error)
	CancelBooking(ctx context.Context, date types.DateString, email string, deskID int) error
}

// SnapshotStore интерфейс для инвалидации снапшота отменённой даты
type SnapshotStore interface {
	Invalidate(date types.DateString)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
