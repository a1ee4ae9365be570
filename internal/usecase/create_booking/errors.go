package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInvalidDate возвращается для даты в прошлом
	ErrInvalidDate = errors.New("create_booking: booking date is in the past")

	// ErrDateTooFarInFuture возвращается, когда дата за пределами горизонта бронирования
	ErrDateTooFarInFuture = errors.New("create_booking: date is too far in the future")

	// ErrDeskNotFound возвращается, когда стола нет в инвентаре
	ErrDeskNotFound = errors.New("create_booking: desk not found")

	// ErrAvailabilityUnknown возвращается, когда проверка доступности перед
	// записью не удалась. Запись в этом случае не выполняется.
	ErrAvailabilityUnknown = errors.New("create_booking: availability unknown, remote store unreachable")

	// ErrDeskAlreadyBooked возвращается, когда стол уже занят на дату.
	// Локальный отказ, запись в удалённое хранилище не выполняется.
	ErrDeskAlreadyBooked = errors.New("create_booking: desk is already booked on this date")

	// ErrUserAlreadyBooked возвращается, когда пользователь уже держит
	// неотменённое бронирование на эту дату
	ErrUserAlreadyBooked = errors.New("create_booking: user already has a booking on this date")

	// ErrSubmitFailed возвращается, когда удалённое хранилище отклонило запись
	// или запись не удалась по сетевой причине. Локальная пометка откатывается.
	ErrSubmitFailed = errors.New("create_booking: booking write failed")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
