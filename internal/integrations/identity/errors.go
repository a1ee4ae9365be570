package identity

import "errors"

var (
	// ErrUnauthorized возвращается, когда провайдер не принял токен
	ErrUnauthorized = errors.New("identity client: token rejected")

	// ErrTransport возвращается при сетевой ошибке или таймауте
	ErrTransport = errors.New("identity client: transport failure")

	// ErrInvalidResponse возвращается при некорректном ответе провайдера
	ErrInvalidResponse = errors.New("identity client: invalid response")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("identity client: internal error")
)
