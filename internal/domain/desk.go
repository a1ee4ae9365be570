package domain

import "fmt"

// Desk represents a bookable physical workspace slot on the floor map.
// The inventory is static and defined at build time.
type Desk struct {
	ID   int
	Name string
}

// IsWindowSide returns true if the desk is in the window-side (right) section
func (d Desk) IsWindowSide() bool {
	return d.ID > LeftSectionMaxDeskID
}

// Inventory returns the full static desk inventory, ordered by id
func Inventory() []Desk {
	desks := make([]Desk, 0, TotalDesks)
	for id := 1; id <= TotalDesks; id++ {
		desks = append(desks, Desk{ID: id, Name: fmt.Sprintf("Desk %d", id)})
	}
	return desks
}

// LeftSection returns the desks of the left floor-map section (ids 1..6)
func LeftSection() []Desk {
	return Inventory()[:LeftSectionMaxDeskID]
}

// RightSection returns the desks of the window-side section (ids 7..10)
func RightSection() []Desk {
	return Inventory()[LeftSectionMaxDeskID:]
}

// DeskByID returns the desk with the given id, if it exists in the inventory
func DeskByID(id int) (Desk, bool) {
	if !IsValidDeskID(id) {
		return Desk{}, false
	}
	return Desk{ID: id, Name: fmt.Sprintf("Desk %d", id)}, true
}

// IsValidDeskID returns true if the id belongs to the static inventory
func IsValidDeskID(id int) bool {
	return id >= 1 && id <= TotalDesks
}
