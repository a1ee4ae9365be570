package expand_recurrence

import (
	"context"

	"github.com/bluebird-hq/Bluebird-DeskService/internal/domain"
	"github.com/bluebird-hq/Bluebird-DeskService/pkg/types"
)

// WorkflowClient интерфейс клиента удалённого хранилища бронирований
type WorkflowClient interface {
	GetBookingsByDate(ctx context.Context, date types.DateString) ([]domain.BookingRecord, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
