package create_booking

import (
	createBooking "github.com/bluebird-hq/Bluebird-DeskService/internal/usecase/create_booking"
	"github.com/bluebird-hq/Bluebird-DeskService/pkg/types"
)

// CreateBookingRequest HTTP модель запроса на создание бронирования
type CreateBookingRequest struct {
	Date   string `json:"date"`   // Дата в формате YYYY-MM-DD
	DeskID int    `json:"deskId"` // ID стола (1..10)
}

// CreateBookingResponse HTTP модель подтверждённого бронирования
type CreateBookingResponse struct {
	RequestID string `json:"requestId"`
	Date      string `json:"date"`
	DeskID    int    `json:"deskId"`
	DeskName  string `json:"deskName"`
	UserEmail string `json:"userEmail"`
	UserName  string `json:"userName"`
	Status    string `json:"status"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(email, name string) *createBooking.Request {
	return &createBooking.Request{
		Date:      types.DateString(r.Date),
		DeskID:    r.DeskID,
		UserEmail: email,
		UserName:  name,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(result *createBooking.Response) *CreateBookingResponse {
	return &CreateBookingResponse{
		RequestID: result.RequestID,
		Date:      result.Date.String(),
		DeskID:    result.DeskID,
		DeskName:  result.DeskName,
		UserEmail: result.UserEmail,
		UserName:  result.UserName,
		Status:    result.Status,
	}
}
