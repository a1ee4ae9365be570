package get_usage_report

import (
	"github.com/bluebird-hq/Bluebird-DeskService/internal/service/reports/models"
)

// DeskUsageDTO HTTP модель агрегата по одному столу
type DeskUsageDTO struct {
	DeskID   int    `json:"deskId"`
	DeskName string `json:"deskName"`
	Bookings int    `json:"bookings"`
}

// UsageReportResponse HTTP модель отчёта об использовании
type UsageReportResponse struct {
	From            string         `json:"from"`
	To              string         `json:"to"`
	WorkingDays     int            `json:"workingDays"`
	TotalBookings   int            `json:"totalBookings"`
	UtilizationRate float64        `json:"utilizationRate"`
	Desks           []DeskUsageDTO `json:"desks"`
	BusiestDeskID   int            `json:"busiestDeskId"`
	SkippedDates    []string       `json:"skippedDates,omitempty"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP модель
func FromServiceResponse(result *models.UsageResponse) *UsageReportResponse {
	resp := &UsageReportResponse{
		From:            result.From.String(),
		To:              result.To.String(),
		WorkingDays:     result.WorkingDays,
		TotalBookings:   result.TotalBookings,
		UtilizationRate: result.UtilizationRate,
		Desks:           make([]DeskUsageDTO, 0, len(result.Desks)),
		BusiestDeskID:   result.BusiestDeskID,
	}
	for _, d := range result.Desks {
		resp.Desks = append(resp.Desks, DeskUsageDTO{
			DeskID:   d.DeskID,
			DeskName: d.DeskName,
			Bookings: d.Bookings,
		})
	}
	for _, s := range result.SkippedDates {
		resp.SkippedDates = append(resp.SkippedDates, s.String())
	}
	return resp
}
