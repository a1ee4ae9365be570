package get_availability

import (
	resolveAvailability "github.com/bluebird-hq/Bluebird-DeskService/internal/usecase/resolve_availability"
)

// OccupantDTO HTTP модель занимающего стол пользователя
type OccupantDTO struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// DeskStatusDTO HTTP модель статуса стола на дату
type DeskStatusDTO struct {
	ID       int          `json:"id"`
	Name     string       `json:"name"`
	Status   string       `json:"status"` // available / booked
	Occupant *OccupantDTO `json:"occupant,omitempty"`
}

// AvailabilityResponse HTTP модель снапшота доступности
type AvailabilityResponse struct {
	Date      string          `json:"date"`
	Desks     []DeskStatusDTO `json:"desks"`
	Available int             `json:"available"`
	Booked    int             `json:"booked"`
	Stale     bool            `json:"stale,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *resolveAvailability.Response) *AvailabilityResponse {
	availability := resp.Availability

	desks := make([]DeskStatusDTO, 0, len(availability.Desks))
	for _, s := range availability.Desks {
		dto := DeskStatusDTO{
			ID:     s.Desk.ID,
			Name:   s.Desk.Name,
			Status: string(s.Status),
		}
		if s.Occupant != nil {
			dto.Occupant = &OccupantDTO{Email: s.Occupant.Email, Name: s.Occupant.Name}
		}
		desks = append(desks, dto)
	}

	return &AvailabilityResponse{
		Date:      availability.Date.String(),
		Desks:     desks,
		Available: availability.AvailableCount(),
		Booked:    availability.BookedCount(),
		Stale:     resp.Stale,
	}
}
