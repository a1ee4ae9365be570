package get_checkin_status

import (
	"github.com/bluebird-hq/Bluebird-DeskService/internal/service/checkin/models"
)

// TodayBookingDTO HTTP модель сегодняшнего бронирования пользователя
type TodayBookingDTO struct {
	DeskID   int    `json:"deskId"`
	DeskName string `json:"deskName"`
	Date     string `json:"date"`
	Status   string `json:"status"`
}

// StatusResponse HTTP модель статуса чек-ина на сегодня
type StatusResponse struct {
	Date          string            `json:"date"`
	CheckedIn     bool              `json:"checkedIn"`
	CheckedOut    bool              `json:"checkedOut"`
	Location      string            `json:"location,omitempty"`
	TodayBookings []TodayBookingDTO `json:"todayBookings"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP модель
func FromServiceResponse(result *models.StatusResponse) *StatusResponse {
	resp := &StatusResponse{
		Date:          result.Date.String(),
		CheckedIn:     result.CheckedIn,
		CheckedOut:    result.CheckedOut,
		Location:      result.Location,
		TodayBookings: make([]TodayBookingDTO, 0, len(result.TodayBookings)),
	}
	for _, b := range result.TodayBookings {
		resp.TodayBookings = append(resp.TodayBookings, TodayBookingDTO{
			DeskID:   b.DeskID,
			DeskName: b.DeskName,
			Date:     b.Date.String(),
			Status:   b.Status,
		})
	}
	return resp
}
