package create_recurring_booking

import (
	"context"

	createBooking "github.com/bluebird-hq/Bluebird-DeskService/internal/usecase/create_booking"
	expandRecurrence "github.com/bluebird-hq/Bluebird-DeskService/internal/usecase/expand_recurrence"
)

// RecurrenceExpander интерфейс use case разворачивания правила повторения
type RecurrenceExpander interface {
	Execute(ctx context.Context, req *expandRecurrence.Request) (*expandRecurrence.Response, error)
}

// BookingSubmitter интерфейс use case создания одиночного бронирования
type BookingSubmitter interface {
	Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
