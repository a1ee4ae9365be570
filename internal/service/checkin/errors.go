package checkin

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("checkin.service: invalid input data")

	// ErrAlreadyCheckedIn возвращается при повторном чек-ине за день
	ErrAlreadyCheckedIn = errors.New("checkin.service: already checked in today")

	// ErrNotCheckedIn возвращается при check-out без чек-ина за день
	ErrNotCheckedIn = errors.New("checkin.service: not checked in today")

	// ErrAlreadyCheckedOut возвращается при повторном check-out
	ErrAlreadyCheckedOut = errors.New("checkin.service: already checked out today")

	// ErrRemote возвращается, когда удалённое хранилище недоступно
	// или отклонило запись
	ErrRemote = errors.New("checkin.service: remote store error")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("checkin.service: internal error")
)
