package create_recurring_booking

import (
	"time"

	createRecurring "github.com/bluebird-hq/Bluebird-DeskService/internal/usecase/create_recurring_booking"
	"github.com/bluebird-hq/Bluebird-DeskService/pkg/types"
)

// CreateRecurringBookingRequest HTTP модель запроса на повторяющееся
// бронирование. Дни недели в соглашении Go: 1 = понедельник .. 5 = пятница.
type CreateRecurringBookingRequest struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Weekdays  []int  `json:"weekdays"`
	DeskID    int    `json:"deskId"`
}

// DateResultDTO итог обработки одной даты прогона
type DateResultDTO struct {
	Date    string `json:"date"`
	Outcome string `json:"outcome"` // booked / unavailable / failed
	Reason  string `json:"reason,omitempty"`
}

// CreateRecurringBookingResponse HTTP модель итогов прогона
type CreateRecurringBookingResponse struct {
	Booked      int             `json:"booked"`
	Unavailable int             `json:"unavailable"`
	Failed      int             `json:"failed"`
	Results     []DateResultDTO `json:"results"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateRecurringBookingRequest) ToUseCaseRequest(email, name string) *createRecurring.Request {
	weekdays := make([]time.Weekday, 0, len(r.Weekdays))
	for _, d := range r.Weekdays {
		weekdays = append(weekdays, time.Weekday(d))
	}
	return &createRecurring.Request{
		StartDate: types.DateString(r.StartDate),
		EndDate:   types.DateString(r.EndDate),
		Weekdays:  weekdays,
		DeskID:    r.DeskID,
		UserEmail: email,
		UserName:  name,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(result *createRecurring.Response) *CreateRecurringBookingResponse {
	resp := &CreateRecurringBookingResponse{
		Booked:      result.Booked,
		Unavailable: result.Unavailable,
		Failed:      result.Failed,
		Results:     make([]DateResultDTO, 0, len(result.Results)),
	}
	for _, res := range result.Results {
		resp.Results = append(resp.Results, DateResultDTO{
			Date:    res.Date.String(),
			Outcome: res.Outcome,
			Reason:  res.Reason,
		})
	}
	return resp
}
