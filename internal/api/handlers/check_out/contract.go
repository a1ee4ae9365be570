package check_out

import (
	"context"

	"github.com/bluebird-hq/Bluebird-DeskService/internal/service/checkin/models"
)

type CheckInService interface {
	CheckOut(ctx context.Context, email string) (*models.CheckOutResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
