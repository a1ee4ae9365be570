package domain

import "github.com/bluebird-hq/Bluebird-DeskService/pkg/types"

// DeskState derived booked/available status of a desk for a specific date
type DeskState string

const (
	DeskAvailable DeskState = "available"
	DeskBooked    DeskState = "booked"
)

// Occupant identity of the user holding a booked desk
type Occupant struct {
	Email string
	Name  string
}

// DeskStatus per-desk derived status for one date. Recomputed on every
// fetch, never persisted locally beyond the current snapshot.
type DeskStatus struct {
	Desk     Desk
	Status   DeskState
	Occupant *Occupant // nil, если стол свободен
}

// IsAvailable returns true if the desk is free on the snapshot's date
func (s *DeskStatus) IsAvailable() bool {
	return s.Status == DeskAvailable
}

// Availability per-date availability snapshot across the full inventory
type Availability struct {
	Date  types.DateString
	Desks []DeskStatus
}

// ResolveAvailability derives the per-desk availability for a date from the
// booking records fetched from the remote store. A desk with a matching
// non-cancelled record is booked by that record's user; every unmatched desk
// is available.
func ResolveAvailability(date types.DateString, records []BookingRecord) Availability {
	statuses := make([]DeskStatus, 0, TotalDesks)

	for _, desk := range Inventory() {
		status := DeskStatus{Desk: desk, Status: DeskAvailable}

		for i := range records {
			rec := &records[i]
			if rec.DeskID != desk.ID || rec.Date != date || !rec.IsActive() {
				continue
			}
			status.Status = DeskBooked
			status.Occupant = &Occupant{Email: rec.UserEmail, Name: rec.UserName}
			break
		}

		statuses = append(statuses, status)
	}

	return Availability{Date: date, Desks: statuses}
}

// DeskByID returns the status of the desk with the given id
func (a *Availability) DeskByID(id int) (DeskStatus, bool) {
	for _, s := range a.Desks {
		if s.Desk.ID == id {
			return s, true
		}
	}
	return DeskStatus{}, false
}

// AvailableCount returns the number of available desks in the snapshot
func (a *Availability) AvailableCount() int {
	count := 0
	for _, s := range a.Desks {
		if s.Status == DeskAvailable {
			count++
		}
	}
	return count
}

// BookedCount returns the number of booked desks in the snapshot
func (a *Availability) BookedCount() int {
	return len(a.Desks) - a.AvailableCount()
}

// UserHoldsBooking returns true if the user already occupies any desk
// in the snapshot
func (a *Availability) UserHoldsBooking(email string) bool {
	for _, s := range a.Desks {
		if s.Occupant != nil && s.Occupant.Email == email {
			return true
		}
	}
	return false
}
