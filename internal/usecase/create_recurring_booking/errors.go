package create_recurring_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_recurring_booking: invalid input data")

	// ErrNoCandidateDates возвращается, когда правило не дало ни одной даты
	ErrNoCandidateDates = errors.New("create_recurring_booking: recurrence rule produced no dates")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_recurring_booking: internal error")
)
