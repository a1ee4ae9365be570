package check_in

import (
	"github.com/bluebird-hq/Bluebird-DeskService/internal/service/checkin/models"
)

// CheckInRequest HTTP модель запроса на чек-ин. DeskID учитывается
// только для локации "Office", иначе в записи фиксируется 0.
type CheckInRequest struct {
	Location string `json:"location"`
	DeskID   int    `json:"deskId"`
}

// CheckInResponse HTTP модель подтверждённого чек-ина
type CheckInResponse struct {
	Date     string `json:"date"`
	DeskID   int    `json:"deskId"`
	Location string `json:"location"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CheckInRequest) ToServiceRequest() *models.CheckInRequest {
	return &models.CheckInRequest{
		Location: r.Location,
		DeskID:   r.DeskID,
	}
}

// FromServiceResponse конвертирует ответ сервиса в HTTP модель
func FromServiceResponse(result *models.CheckInResponse) *CheckInResponse {
	return &CheckInResponse{
		Date:     result.Date.String(),
		DeskID:   result.DeskID,
		Location: result.Location,
	}
}
