package domain

import "github.com/bluebird-hq/Bluebird-DeskService/pkg/types"

// BookingStatus represents the status of a booking record in the remote store
type BookingStatus string

const (
	StatusBooked    BookingStatus = "Booked"
	StatusCancelled BookingStatus = "Cancelled"
	StatusCheckedIn BookingStatus = "Checked In"
)

// BookingRecord represents a desk booking owned by the remote workflow store.
// Local copies are an ephemeral read model, overwritten on every refetch.
type BookingRecord struct {
	DeskID    int
	DeskName  string
	Date      types.DateString
	UserEmail string
	UserName  string
	Status    BookingStatus
}

// IsActive returns true if the booking has not been cancelled
func (b *BookingRecord) IsActive() bool {
	return b.Status != StatusCancelled
}

// IsCheckedIn returns true if the booking has been converted into a check-in
func (b *BookingRecord) IsCheckedIn() bool {
	return b.Status == StatusCheckedIn
}

// BelongsTo returns true if the booking is held by the given user email
func (b *BookingRecord) BelongsTo(email string) bool {
	return b.UserEmail == email
}
