package domain

import "github.com/bluebird-hq/Bluebird-DeskService/pkg/types"

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	TotalDesks = 10

	// LeftSectionMaxDeskID последний стол левой секции floor map;
	// столы 7..10 стоят у окна в правой секции
	LeftSectionMaxDeskID = 6

	// MaxAdvanceBookingDays максимальный горизонт бронирования в днях
	MaxAdvanceBookingDays = 90
)

// LocationOffice is the only check-in location that keeps the desk id
// attached to the check-in record. Any other location is written with desk 0.
const LocationOffice = "Office"

// PublicHolidays static list of public holidays (AU, NSW observance dates).
// Dates in this list are always excluded from recurrence expansion.
var PublicHolidays = []types.DateString{
	// 2025
	"2025-01-01", // New Year's Day
	"2025-01-27", // Australia Day (observed)
	"2025-04-18", // Good Friday
	"2025-04-21", // Easter Monday
	"2025-04-25", // Anzac Day
	"2025-06-09", // King's Birthday
	"2025-10-06", // Labour Day
	"2025-12-25", // Christmas Day
	"2025-12-26", // Boxing Day
	// 2026
	"2026-01-01", // New Year's Day
	"2026-01-26", // Australia Day
	"2026-04-03", // Good Friday
	"2026-04-06", // Easter Monday
	"2026-06-08", // King's Birthday
	"2026-10-05", // Labour Day
	"2026-12-25", // Christmas Day
	"2026-12-28", // Boxing Day (observed)
}

// IsHoliday returns true if the date is in the static public holiday list
func IsHoliday(date types.DateString) bool {
	for _, h := range PublicHolidays {
		if h == date {
			return true
		}
	}
	return false
}
