package expand_recurrence

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("expand_recurrence: invalid input data")

	// ErrInvalidRange возвращается, когда конец диапазона раньше начала
	ErrInvalidRange = errors.New("expand_recurrence: end date is before start date")

	// ErrInvalidWeekday возвращается для дня недели вне Mon..Fri
	ErrInvalidWeekday = errors.New("expand_recurrence: weekday outside Mon..Fri")

	// ErrDeskNotFound возвращается, когда стола нет в инвентаре
	ErrDeskNotFound = errors.New("expand_recurrence: desk not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("expand_recurrence: internal error")
)
