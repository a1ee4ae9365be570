package get_user_bookings

import (
	"context"

	"github.com/bluebird-hq/Bluebird-DeskService/internal/service/bookings/models"
)

type BookingsService interface {
	GetUserBookings(ctx context.Context, email string, includeCancelled bool) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
