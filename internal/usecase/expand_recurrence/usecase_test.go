package expand_recurrence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bluebird-hq/Bluebird-DeskService/internal/domain"
	"github.com/bluebird-hq/Bluebird-DeskService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// fakeWorkflowClient отдаёт записи по дате из карты, ошибки - из errDates
type fakeWorkflowClient struct {
	byDate   map[types.DateString][]domain.BookingRecord
	errDates map[types.DateString]error

	fetchedDates []types.DateString
}

func (f *fakeWorkflowClient) GetBookingsByDate(ctx context.Context, date types.DateString) ([]domain.BookingRecord, error) {
	f.fetchedDates = append(f.fetchedDates, date)
	if err, ok := f.errDates[date]; ok {
		return nil, err
	}
	return f.byDate[date], nil
}

func validRequest() *Request {
	// 2025-06-16 - понедельник
	return &Request{
		StartDate: "2025-06-16",
		EndDate:   "2025-06-29",
		Weekdays:  []time.Weekday{time.Monday, time.Wednesday},
		DeskID:    3,
		UserEmail: "amy@corp.example",
	}
}

func TestUseCase_Execute_AllAvailable(t *testing.T) {
	client := &fakeWorkflowClient{}
	uc := NewUseCase(client, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	expected := []types.DateString{"2025-06-16", "2025-06-18", "2025-06-23", "2025-06-25"}
	assert.Equal(t, expected, resp.Candidates)
	assert.Equal(t, expected, resp.Available)
	assert.Empty(t, resp.Unavailable)

	// По одному fetch на каждую дату-кандидат, в календарном порядке
	assert.Equal(t, expected, client.fetchedDates)
}

func TestUseCase_Execute_PartitionsByReason(t *testing.T) {
	client := &fakeWorkflowClient{
		byDate: map[types.DateString][]domain.BookingRecord{
			// Стол занят другим пользователем
			"2025-06-18": {{DeskID: 3, Date: "2025-06-18", UserEmail: "bob@corp.example", Status: domain.StatusBooked}},
			// У пользователя уже есть бронь другого стола
			"2025-06-23": {{DeskID: 7, Date: "2025-06-23", UserEmail: "amy@corp.example", Status: domain.StatusBooked}},
		},
		errDates: map[types.DateString]error{
			"2025-06-25": errors.New("status 502"),
		},
	}
	uc := NewUseCase(client, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, []types.DateString{"2025-06-16"}, resp.Available)
	assert.Equal(t, []UnavailableDate{
		{Date: "2025-06-18", Reason: ReasonDeskBooked},
		{Date: "2025-06-23", Reason: ReasonUserAlreadyBooked},
		{Date: "2025-06-25", Reason: ReasonAvailabilityUnknown},
	}, resp.Unavailable)
}

func TestUseCase_Execute_CancelledRecordsDoNotBlock(t *testing.T) {
	client := &fakeWorkflowClient{
		byDate: map[types.DateString][]domain.BookingRecord{
			"2025-06-18": {{DeskID: 3, Date: "2025-06-18", UserEmail: "bob@corp.example", Status: domain.StatusCancelled}},
		},
	}
	uc := NewUseCase(client, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Contains(t, resp.Available, types.DateString("2025-06-18"))
}

func TestUseCase_Execute_Validation(t *testing.T) {
	uc := NewUseCase(&fakeWorkflowClient{}, nopLogger{})

	req := validRequest()
	req.EndDate = "2025-06-10"
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidRange)

	req = validRequest()
	req.Weekdays = []time.Weekday{time.Saturday}
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidWeekday)

	req = validRequest()
	req.Weekdays = nil
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = validRequest()
	req.DeskID = 0
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrDeskNotFound)
}

func TestUseCase_Execute_EmptyRuleYieldsNoCandidates(t *testing.T) {
	client := &fakeWorkflowClient{}
	uc := NewUseCase(client, nopLogger{})

	// Пятница в диапазоне без пятниц
	req := validRequest()
	req.StartDate = "2025-06-21" // суббота
	req.EndDate = "2025-06-22"   // воскресенье
	req.Weekdays = []time.Weekday{time.Friday}

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Empty(t, resp.Candidates)
	assert.Empty(t, client.fetchedDates)
}
