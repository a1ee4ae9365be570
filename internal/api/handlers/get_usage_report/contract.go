package get_usage_report

import (
	"context"

	"github.com/bluebird-hq/Bluebird-DeskService/internal/service/reports/models"
)

type ReportsService interface {
	Usage(ctx context.Context, req *models.UsageRequest) (*models.UsageResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
