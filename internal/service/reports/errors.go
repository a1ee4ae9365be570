package reports

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reports.service: invalid input data")

	// ErrInvalidRange возвращается, когда конец периода раньше начала
	// или период превышает допустимую длину
	ErrInvalidRange = errors.New("reports.service: invalid report range")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("reports.service: internal error")
)
