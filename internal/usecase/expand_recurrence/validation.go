package expand_recurrence

import (
	"fmt"
	"time"

	"github.com/bluebird-hq/Bluebird-DeskService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return fmt.Errorf("%w: start and end dates are required", ErrInvalidInput)
	}
	if err := req.StartDate.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := req.EndDate.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if req.EndDate.IsBefore(req.StartDate) {
		return ErrInvalidRange
	}
	if len(req.Weekdays) == 0 {
		return fmt.Errorf("%w: at least one weekday is required", ErrInvalidInput)
	}
	for _, wd := range req.Weekdays {
		if wd < time.Monday || wd > time.Friday {
			return fmt.Errorf("%w: %s", ErrInvalidWeekday, wd)
		}
	}
	if !domain.IsValidDeskID(req.DeskID) {
		return fmt.Errorf("%w: desk id %d", ErrDeskNotFound, req.DeskID)
	}
	if req.UserEmail == "" {
		return fmt.Errorf("%w: user email is required", ErrInvalidInput)
	}
	return nil
}
