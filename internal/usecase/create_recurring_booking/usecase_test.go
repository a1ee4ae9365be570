package create_recurring_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	createBooking "github.com/bluebird-hq/Bluebird-DeskService/internal/usecase/create_booking"
	expandRecurrence "github.com/bluebird-hq/Bluebird-DeskService/internal/usecase/expand_recurrence"
	"github.com/bluebird-hq/Bluebird-DeskService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeExpander struct {
	resp *expandRecurrence.Response
	err  error
}

func (f *fakeExpander) Execute(ctx context.Context, req *expandRecurrence.Request) (*expandRecurrence.Response, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

// fakeSubmitter проваливает запись для дат из failDates
type fakeSubmitter struct {
	failDates map[types.DateString]error

	submitted []types.DateString
}

func (f *fakeSubmitter) Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.submitted = append(f.submitted, req.Date)
	if err, ok := f.failDates[req.Date]; ok {
		return nil, err
	}
	return &createBooking.Response{Date: req.Date, DeskID: req.DeskID}, nil
}

func validRequest() *Request {
	return &Request{
		StartDate: "2025-06-16",
		EndDate:   "2025-06-29",
		Weekdays:  []time.Weekday{time.Monday, time.Wednesday},
		DeskID:    3,
		UserEmail: "amy@corp.example",
		UserName:  "Amy",
	}
}

func TestUseCase_Execute_AllBooked(t *testing.T) {
	dates := []types.DateString{"2025-06-16", "2025-06-18", "2025-06-23", "2025-06-25"}
	expander := &fakeExpander{resp: &expandRecurrence.Response{
		Candidates: dates,
		Available:  dates,
	}}
	submitter := &fakeSubmitter{}
	uc := NewUseCase(expander, submitter, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, 4, resp.Booked)
	assert.Equal(t, 0, resp.Unavailable)
	assert.Equal(t, 0, resp.Failed)
	assert.Equal(t, dates, submitter.submitted)

	require.Len(t, resp.Results, 4)
	for _, res := range resp.Results {
		assert.Equal(t, OutcomeBooked, res.Outcome)
	}
}

func TestUseCase_Execute_PartialRun_NoRollback(t *testing.T) {
	expander := &fakeExpander{resp: &expandRecurrence.Response{
		Candidates: []types.DateString{"2025-06-16", "2025-06-18", "2025-06-23", "2025-06-25"},
		Available:  []types.DateString{"2025-06-16", "2025-06-23", "2025-06-25"},
		Unavailable: []expandRecurrence.UnavailableDate{
			{Date: "2025-06-18", Reason: expandRecurrence.ReasonDeskBooked},
		},
	}}
	submitter := &fakeSubmitter{
		failDates: map[types.DateString]error{
			"2025-06-23": errors.New("status 502"),
		},
	}
	uc := NewUseCase(expander, submitter, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Booked)
	assert.Equal(t, 1, resp.Unavailable)
	assert.Equal(t, 1, resp.Failed)

	// Отказ одной даты не прерывает прогон: все принятые даты отправлены
	assert.Equal(t, []types.DateString{"2025-06-16", "2025-06-23", "2025-06-25"}, submitter.submitted)

	// Итог в календарном порядке, независимо от разбиения
	require.Len(t, resp.Results, 4)
	assert.Equal(t, []DateResult{
		{Date: "2025-06-16", Outcome: OutcomeBooked},
		{Date: "2025-06-18", Outcome: OutcomeUnavailable, Reason: expandRecurrence.ReasonDeskBooked},
		{Date: "2025-06-23", Outcome: OutcomeFailed, Reason: "status 502"},
		{Date: "2025-06-25", Outcome: OutcomeBooked},
	}, resp.Results)
}

func TestUseCase_Execute_NoCandidates(t *testing.T) {
	expander := &fakeExpander{resp: &expandRecurrence.Response{}}
	uc := NewUseCase(expander, &fakeSubmitter{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrNoCandidateDates)
}

func TestUseCase_Execute_ExpansionErrorPropagates(t *testing.T) {
	expander := &fakeExpander{err: expandRecurrence.ErrInvalidRange}
	uc := NewUseCase(expander, &fakeSubmitter{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, expandRecurrence.ErrInvalidRange)
}
