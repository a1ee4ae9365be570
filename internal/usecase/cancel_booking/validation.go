package cancel_booking

import (
	"fmt"

	"github.com/bluebird-hq/Bluebird-DeskService/internal/domain"
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
		return fmt.Errorf("%w: desk id %d", ErrInvalidInput, req.DeskID)
	}
	if req.UserEmail == "" {
		return fmt.Errorf("%w: user email is required", ErrInvalidInput)
	}
	return nil
}
