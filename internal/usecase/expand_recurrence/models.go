package expand_recurrence

import (
	"time"

	"github.com/bluebird-hq/Bluebird-DeskService/pkg/types"
)

// Причины недоступности даты для бронирования
const (
	ReasonDeskBooked          = "desk_booked"
	ReasonUserAlreadyBooked   = "user_already_booked"
	ReasonAvailabilityUnknown = "availability_unknown"
)

// Request модель запроса разворачивания правила повторения
type Request struct {
	StartDate types.DateString
	EndDate   types.DateString
	Weekdays  []time.Weekday // Mon..Fri, соглашение Go (Sunday = 0)
	DeskID    int            // Выбранный стол для проверки доступности
	UserEmail string         // Пользователь для проверки второго предиката
}

// UnavailableDate дата, отклонённая проверкой доступности, с причиной
type UnavailableDate struct {
	Date   types.DateString
	Reason string
}

// Response результат разворачивания: кандидаты и их разбиение
// по результату проверки доступности
type Response struct {
	Candidates  []types.DateString // Все даты правила, по возрастанию
	Available   []types.DateString // Даты, где стол свободен и у пользователя нет брони
	Unavailable []UnavailableDate  // Отклонённые даты с причинами
}
