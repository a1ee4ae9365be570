package check_out

import (
	"github.com/bluebird-hq/Bluebird-DeskService/internal/service/checkin/models"
)

// CheckOutResponse HTTP модель подтверждённого check-out
type CheckOutResponse struct {
	Date         string `json:"date"`
	CheckOutTime string `json:"checkOutTime"` // RFC3339
}

// FromServiceResponse конвертирует ответ сервиса в HTTP модель
func FromServiceResponse(result *models.CheckOutResponse) *CheckOutResponse {
	return &CheckOutResponse{
		Date:         result.Date.String(),
		CheckOutTime: result.CheckOutTime,
	}
}
