package models

import (
	"github.com/bluebird-hq/Bluebird-DeskService/internal/domain"
	"github.com/bluebird-hq/Bluebird-DeskService/pkg/types"
)

// TodayBooking бронирование пользователя на сегодня, ещё не превращённое
// в чек-ин (кандидат на офисный check-in)
type TodayBooking struct {
	DeskID   int
	DeskName string
	Date     types.DateString
	Status   string
}

// StatusResponse статус чек-ина пользователя на сегодня
type StatusResponse struct {
	Date          types.DateString
	CheckedIn     bool
	CheckedOut    bool
	Location      string // локация сегодняшнего чек-ина, если он есть
	TodayBookings []TodayBooking
}

// CheckInRequest запрос на чек-ин
type CheckInRequest struct {
	Location string
	DeskID   int // игнорируется для не-офисных локаций
}

// CheckInResponse результат чек-ина
type CheckInResponse struct {
	Date     types.DateString
	DeskID   int
	Location string
}

// CheckOutResponse результат check-out
type CheckOutResponse struct {
	Date         types.DateString
	CheckOutTime string // RFC3339
}

// FromDomainBooking конвертирует доменную запись в модель сервиса
func FromDomainBooking(rec *domain.BookingRecord) TodayBooking {
	return TodayBooking{
		DeskID:   rec.DeskID,
		DeskName: rec.DeskName,
		Date:     rec.Date,
		Status:   string(rec.Status),
	}
}
