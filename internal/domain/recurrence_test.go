package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bluebird-hq/Bluebird-DeskService/pkg/types"
)

func TestRecurrenceSelection_Expand_TwoWeeksMonWed(t *testing.T) {
	// 2025-06-16 - понедельник
	sel := RecurrenceSelection{
		StartDate: "2025-06-16",
		EndDate:   "2025-06-29",
		Weekdays:  []time.Weekday{time.Monday, time.Wednesday},
	}

	dates, err := sel.Expand(nil)
	require.NoError(t, err)

	assert.Equal(t, []types.DateString{
		"2025-06-16",
		"2025-06-18",
		"2025-06-23",
		"2025-06-25",
	}, dates)
}

func TestRecurrenceSelection_Expand_ExcludesHolidays(t *testing.T) {
	sel := RecurrenceSelection{
		StartDate: "2025-06-16",
		EndDate:   "2025-06-29",
		Weekdays:  []time.Weekday{time.Monday, time.Wednesday},
	}

	dates, err := sel.Expand([]types.DateString{"2025-06-23"})
	require.NoError(t, err)

	assert.Equal(t, []types.DateString{
		"2025-06-16",
		"2025-06-18",
		"2025-06-25",
	}, dates)
}

func TestRecurrenceSelection_Expand_WeekendNeverKept(t *testing.T) {
	// Суббота и воскресенье отбрасываются, даже если день недели выбран
	sel := RecurrenceSelection{
		StartDate: "2025-06-16",
		EndDate:   "2025-06-22",
		Weekdays:  []time.Weekday{time.Saturday, time.Sunday},
	}

	dates, err := sel.Expand(nil)
	require.NoError(t, err)
	assert.Empty(t, dates)
}

func TestRecurrenceSelection_Expand_EmptyRange(t *testing.T) {
	// Конец раньше начала: ни одной даты, без ошибки
	sel := RecurrenceSelection{
		StartDate: "2025-06-20",
		EndDate:   "2025-06-16",
		Weekdays:  []time.Weekday{time.Monday},
	}

	dates, err := sel.Expand(nil)
	require.NoError(t, err)
	assert.Empty(t, dates)
}

func TestRecurrenceSelection_Expand_SingleDayRange(t *testing.T) {
	// 2025-06-18 - среда
	sel := RecurrenceSelection{
		StartDate: "2025-06-18",
		EndDate:   "2025-06-18",
		Weekdays:  []time.Weekday{time.Wednesday},
	}

	dates, err := sel.Expand(nil)
	require.NoError(t, err)
	assert.Equal(t, []types.DateString{"2025-06-18"}, dates)
}

func TestRecurrenceSelection_Expand_InvalidDates(t *testing.T) {
	sel := RecurrenceSelection{
		StartDate: "not-a-date",
		EndDate:   "2025-06-18",
		Weekdays:  []time.Weekday{time.Monday},
	}

	_, err := sel.Expand(nil)
	assert.ErrorIs(t, err, types.ErrInvalidDateString)
}

func TestRecurrenceSelection_ContainsWeekday(t *testing.T) {
	sel := RecurrenceSelection{Weekdays: []time.Weekday{time.Monday, time.Friday}}

	assert.True(t, sel.ContainsWeekday(time.Monday))
	assert.True(t, sel.ContainsWeekday(time.Friday))
	assert.False(t, sel.ContainsWeekday(time.Tuesday))
}
