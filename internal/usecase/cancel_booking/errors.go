package cancel_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("cancel_booking: invalid input data")

	// ErrBookingNotFound возвращается, когда у пользователя нет активного
	// бронирования указанного стола на дату
	ErrBookingNotFound = errors.New("cancel_booking: booking not found")

	// ErrCancelFailed возвращается, когда удалённое хранилище не приняло отмену
	ErrCancelFailed = errors.New("cancel_booking: cancellation failed")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("cancel_booking: internal error")
)
