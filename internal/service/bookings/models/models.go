package models

import (
	"github.com/bluebird-hq/Bluebird-DeskService/internal/domain"
	"github.com/bluebird-hq/Bluebird-DeskService/pkg/types"
)

// BookingView запись бронирования в ответе сервиса
type BookingView struct {
	DeskID   int
	DeskName string
	Date     types.DateString
	Status   string
}

// BookingListResponse список бронирований пользователя
type BookingListResponse struct {
	Bookings []BookingView
}

// FromDomainBooking конвертирует доменную запись в модель сервиса
func FromDomainBooking(rec *domain.BookingRecord) BookingView {
	return BookingView{
		DeskID:   rec.DeskID,
		DeskName: rec.DeskName,
		Date:     rec.Date,
		Status:   string(rec.Status),
	}
}
