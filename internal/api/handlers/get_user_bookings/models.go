package get_user_bookings

import (
	"github.com/bluebird-hq/Bluebird-DeskService/internal/service/bookings/models"
)

// BookingDTO HTTP модель записи бронирования пользователя
type BookingDTO struct {
	DeskID   int    `json:"deskId"`
	DeskName string `json:"deskName"`
	Date     string `json:"date"`
	Status   string `json:"status"`
}

// BookingListResponse HTTP модель списка бронирований
type BookingListResponse struct {
	Bookings []BookingDTO `json:"bookings"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP модель
func FromServiceResponse(result *models.BookingListResponse) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingDTO, 0, len(result.Bookings)),
	}
	for _, b := range result.Bookings {
		resp.Bookings = append(resp.Bookings, BookingDTO{
			DeskID:   b.DeskID,
			DeskName: b.DeskName,
			Date:     b.Date.String(),
			Status:   b.Status,
		})
	}
	return resp
}
