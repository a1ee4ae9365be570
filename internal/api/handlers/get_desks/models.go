package get_desks

import "github.com/bluebird-hq/Bluebird-DeskService/internal/domain"

// DeskDTO HTTP модель стола
type DeskDTO struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// DesksResponse HTTP модель инвентаря, разбитого по секциям floor map
type DesksResponse struct {
	LeftSection  []DeskDTO `json:"leftSection"`
	RightSection []DeskDTO `json:"rightSection"`
}

// InventoryResponse собирает HTTP модель статического инвентаря
func InventoryResponse() *DesksResponse {
	return &DesksResponse{
		LeftSection:  toDTOs(domain.LeftSection()),
		RightSection: toDTOs(domain.RightSection()),
	}
}

func toDTOs(desks []domain.Desk) []DeskDTO {
	dtos := make([]DeskDTO, 0, len(desks))
	for _, d := range desks {
		dtos = append(dtos, DeskDTO{ID: d.ID, Name: d.Name})
	}
	return dtos
}
