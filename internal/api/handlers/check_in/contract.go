package check_in

import (
	"context"

	"github.com/bluebird-hq/Bluebird-DeskService/internal/service/checkin/models"
)

type CheckInService interface {
	CheckIn(ctx context.Context, email, name string, req *models.CheckInRequest) (*models.CheckInResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
