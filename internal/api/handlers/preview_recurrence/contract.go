package preview_recurrence

import (
	"context"

	expandRecurrence "github.com/bluebird-hq/Bluebird-DeskService/internal/usecase/expand_recurrence"
)

type ExpandRecurrenceUseCase interface {
	Execute(ctx context.Context, req *expandRecurrence.Request) (*expandRecurrence.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
