package domain

import "github.com/bluebird-hq/Bluebird-DeskService/pkg/types"

// CheckInRecord a daily attendance record tagging a user's location.
// One conceptual record per user per day; "already checked in" is derived
// by exact string match on the date field.
type CheckInRecord struct {
	DeskID       int // 0, если локация не офис
	UserEmail    string
	UserName     string
	Location     string
	Date         types.DateString
	CheckOutTime *string // RFC3339; nil, пока пользователь не выписался
}

// IsForDate returns true if the record's date string-equals the given date.
// Comparison is deliberately an exact string match: timezone-shifted
// representations of the same instant must not count as today.
func (c *CheckInRecord) IsForDate(date types.DateString) bool {
	return c.Date == date
}

// HasCheckedOut returns true if a checkout timestamp has been attached
func (c *CheckInRecord) HasCheckedOut() bool {
	return c.CheckOutTime != nil && *c.CheckOutTime != ""
}

// NormalizeDeskID returns the desk id to be written for a check-in:
// the desk is only kept for office check-ins, any other location writes 0.
func NormalizeDeskID(deskID int, location string) int {
	if location != LocationOffice {
		return 0
	}
	return deskID
}
