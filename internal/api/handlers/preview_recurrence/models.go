package preview_recurrence

import (
	"time"

	expandRecurrence "github.com/bluebird-hq/Bluebird-DeskService/internal/usecase/expand_recurrence"
	"github.com/bluebird-hq/Bluebird-DeskService/pkg/types"
)

// PreviewRecurrenceRequest HTTP модель запроса предпросмотра правила повторения.
// Дни недели в соглашении Go: 1 = понедельник .. 5 = пятница.
type PreviewRecurrenceRequest struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Weekdays  []int  `json:"weekdays"`
	DeskID    int    `json:"deskId"`
}

// UnavailableDateDTO дата, отклонённая проверкой доступности
type UnavailableDateDTO struct {
	Date   string `json:"date"`
	Reason string `json:"reason"`
}

// PreviewRecurrenceResponse HTTP модель результата предпросмотра
type PreviewRecurrenceResponse struct {
	Candidates  []string             `json:"candidates"`
	Available   []string             `json:"available"`
	Unavailable []UnavailableDateDTO `json:"unavailable"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *PreviewRecurrenceRequest) ToUseCaseRequest(email string) *expandRecurrence.Request {
	weekdays := make([]time.Weekday, 0, len(r.Weekdays))
	for _, d := range r.Weekdays {
		weekdays = append(weekdays, time.Weekday(d))
	}
	return &expandRecurrence.Request{
		StartDate: types.DateString(r.StartDate),
		EndDate:   types.DateString(r.EndDate),
		Weekdays:  weekdays,
		DeskID:    r.DeskID,
		UserEmail: email,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(result *expandRecurrence.Response) *PreviewRecurrenceResponse {
	resp := &PreviewRecurrenceResponse{
		Candidates:  dateStrings(result.Candidates),
		Available:   dateStrings(result.Available),
		Unavailable: make([]UnavailableDateDTO, 0, len(result.Unavailable)),
	}
	for _, u := range result.Unavailable {
		resp.Unavailable = append(resp.Unavailable, UnavailableDateDTO{
			Date:   u.Date.String(),
			Reason: u.Reason,
		})
	}
	return resp
}

func dateStrings(dates []types.DateString) []string {
	out := make([]string, 0, len(dates))
	for _, d := range dates {
		out = append(out, d.String())
	}
	return out
}
