package domain

import (
	"time"

	"github.com/bluebird-hq/Bluebird-DeskService/pkg/types"
)

// RecurrenceSelection a rule expanding to multiple calendar dates from a
// weekday pattern and an inclusive date range. Transient, exists only during
// one booking session.
//
// Weekday convention: Go's time.Weekday (Sunday = 0) is used uniformly.
type RecurrenceSelection struct {
	StartDate types.DateString
	EndDate   types.DateString
	Weekdays  []time.Weekday
}

// ContainsWeekday returns true if the weekday is part of the selection
func (s *RecurrenceSelection) ContainsWeekday(wd time.Weekday) bool {
	for _, w := range s.Weekdays {
		if w == wd {
			return true
		}
	}
	return false
}

// Expand enumerates candidate dates of the selection in ascending order.
// A day is kept iff its weekday is selected, it is a working day (Mon..Fri)
// and it is not present in the holiday list. Pure function of its inputs:
// finite, deterministic, restartable.
func (s *RecurrenceSelection) Expand(holidays []types.DateString) ([]types.DateString, error) {
	if err := s.StartDate.Validate(); err != nil {
		return nil, err
	}
	if err := s.EndDate.Validate(); err != nil {
		return nil, err
	}

	holidaySet := make(map[types.DateString]struct{}, len(holidays))
	for _, h := range holidays {
		holidaySet[h] = struct{}{}
	}

	dates := make([]types.DateString, 0)
	current := s.StartDate

	for !current.IsAfter(s.EndDate) {
		wd, err := current.Weekday()
		if err != nil {
			return nil, err
		}

		_, isHoliday := holidaySet[current]
		if s.ContainsWeekday(wd) && isWorkingWeekday(wd) && !isHoliday {
			dates = append(dates, current)
		}

		current, err = current.AddDays(1)
		if err != nil {
			return nil, err
		}
	}

	return dates, nil
}

// isWorkingWeekday правило исходной системы: бронируются только будние дни
func isWorkingWeekday(wd time.Weekday) bool {
	return wd >= time.Monday && wd <= time.Friday
}
