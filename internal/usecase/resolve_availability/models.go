package resolve_availability

import (
	"github.com/bluebird-hq/Bluebird-DeskService/internal/domain"
	"github.com/bluebird-hq/Bluebird-DeskService/pkg/types"
)

// Request модель запроса доступности столов на дату
type Request struct {
	Date types.DateString
}

// Response модель ответа с производной доступностью.
// Stale = true означает, что результат этого fetch'а был вытеснен более
// свежим снапшотом и возвращено опубликованное состояние.
type Response struct {
	Availability domain.Availability
	Stale        bool
}
