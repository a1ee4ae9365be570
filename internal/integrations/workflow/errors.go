package workflow

import "errors"

var (
	// ErrTransport возвращается при сетевой ошибке или таймауте запроса
	ErrTransport = errors.New("workflow client: transport failure")

	// ErrRemoteRejected возвращается при non-2xx ответе endpoint.
	// Тело ответа (возможно не-JSON) включается в текст ошибки как есть.
	ErrRemoteRejected = errors.New("workflow client: remote rejected request")

	// ErrInvalidResponse возвращается при некорректном теле успешного ответа
	ErrInvalidResponse = errors.New("workflow client: invalid response")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("workflow client: internal error")
)
