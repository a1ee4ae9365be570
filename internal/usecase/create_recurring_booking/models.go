package create_recurring_booking

import (
	"time"

	"github.com/bluebird-hq/Bluebird-DeskService/pkg/types"
)

// Итоги попытки бронирования одной даты
const (
	OutcomeBooked      = "booked"
	OutcomeUnavailable = "unavailable"
	OutcomeFailed      = "failed"
)

// Request модель запроса на повторяющееся бронирование
type Request struct {
	StartDate types.DateString
	EndDate   types.DateString
	Weekdays  []time.Weekday
	DeskID    int
	UserEmail string
	UserName  string
}

// DateResult итог обработки одной даты прогона
type DateResult struct {
	Date    types.DateString
	Outcome string // booked / unavailable / failed
	Reason  string // причина для unavailable и failed
}

// Response итоги прогона. Прогон не откатывается: частично выполненное
// повторяющееся бронирование остаётся как есть, итог отражает счётчики.
type Response struct {
	Booked      int
	Unavailable int
	Failed      int
	Results     []DateResult
}
