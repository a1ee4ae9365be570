package resolve_availability

import (
	"context"

	"github.com/bluebird-hq/Bluebird-DeskService/internal/domain"
	"github.com/bluebird-hq/Bluebird-DeskService/pkg/types"
)

// WorkflowClient интерфейс клиента удалённого хранилища бронирований
type WorkflowClient interface {
	GetBookingsByDate(ctx context.Context, date types.DateString) ([]domain.BookingRecord, error)
}

// SnapshotStore интерфейс хранилища снапшотов доступности
type SnapshotStore interface {
	Begin(date types.DateString) uint64
	Publish(date types.DateString, generation uint64, availability domain.Availability) bool
	Snapshot(date types.DateString) (domain.Availability, bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
