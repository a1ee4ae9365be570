package get_checkin_status

import (
	"context"

	"github.com/bluebird-hq/Bluebird-DeskService/internal/service/checkin/models"
)

type CheckInService interface {
	Status(ctx context.Context, email string) (*models.StatusResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
