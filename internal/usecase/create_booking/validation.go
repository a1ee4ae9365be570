package create_booking

import (
	"fmt"
	"time"

	"github.com/bluebird-hq/Bluebird-DeskService/internal/domain"
	"github.com/bluebird-hq/Bluebird-DeskService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if err := req.Date.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if !domain.IsValidDeskID(req.DeskID) {
		return fmt.Errorf("%w: desk id %d", ErrDeskNotFound, req.DeskID)
	}
	if req.UserEmail == "" {
		return fmt.Errorf("%w: user email is required", ErrInvalidInput)
	}
	return nil
}

// validateDateWindow проверяет, что дата в окне бронирования:
// не в прошлом и не дальше MaxAdvanceBookingDays от сегодня
func validateDateWindow(date types.DateString, now time.Time) error {
	today := types.NewDateString(now)

	if date.IsBefore(today) {
		return ErrInvalidDate
	}

	maxDate, err := today.AddDays(domain.MaxAdvanceBookingDays)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
	if date.IsAfter(maxDate) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, domain.MaxAdvanceBookingDays)
	}

	return nil
}
