package cancel_booking

import (
	cancelBooking "github.com/bluebird-hq/Bluebird-DeskService/internal/usecase/cancel_booking"
	"github.com/bluebird-hq/Bluebird-DeskService/pkg/types"
)

// CancelBookingRequest HTTP модель запроса на отмену бронирования
type CancelBookingRequest struct {
	Date   string `json:"date"`   // Дата в формате YYYY-MM-DD
	DeskID int    `json:"deskId"` // ID стола
}

// CancelBookingResponse HTTP модель подтверждения отмены
type CancelBookingResponse struct {
	Date   string `json:"date"`
	DeskID int    `json:"deskId"`
	Status string `json:"status"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CancelBookingRequest) ToUseCaseRequest(email string) *cancelBooking.Request {
	return &cancelBooking.Request{
		Date:      types.DateString(r.Date),
		DeskID:    r.DeskID,
		UserEmail: email,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(result *cancelBooking.Response) *CancelBookingResponse {
	return &CancelBookingResponse{
		Date:   result.Date.String(),
		DeskID: result.DeskID,
		Status: "Cancelled",
	}
}
