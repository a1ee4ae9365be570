package resolve_availability

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("resolve_availability: invalid input data")

	// ErrAvailabilityUnknown возвращается, когда удалённое хранилище
	// недоступно. Доступность считается неизвестной: бронирование по
	// такому результату запрещено.
	ErrAvailabilityUnknown = errors.New("resolve_availability: availability unknown, remote store unreachable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("resolve_availability: internal error")
)
