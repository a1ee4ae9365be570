package bookings

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bluebird-hq/Bluebird-DeskService/internal/domain"
	"github.com/bluebird-hq/Bluebird-DeskService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeWorkflowClient struct {
	records []domain.BookingRecord
	err     error
}

func (f *fakeWorkflowClient) GetBookingsByEmail(ctx context.Context, email string) ([]domain.BookingRecord, error) {
	return f.records, f.err
}

func TestService_GetUserBookings_SortedAscending(t *testing.T) {
	client := &fakeWorkflowClient{
		records: []domain.BookingRecord{
			{DeskID: 3, Date: "2025-07-02", UserEmail: "amy@corp.example", Status: domain.StatusBooked},
			{DeskID: 5, Date: "2025-06-18", UserEmail: "amy@corp.example", Status: domain.StatusBooked},
			{DeskID: 1, Date: "2025-06-25", UserEmail: "amy@corp.example", Status: domain.StatusCheckedIn},
		},
	}
	svc := NewService(client, nopLogger{})

	resp, err := svc.GetUserBookings(context.Background(), "amy@corp.example", false)
	require.NoError(t, err)

	require.Len(t, resp.Bookings, 3)
	assert.Equal(t, types.DateString("2025-06-18"), resp.Bookings[0].Date)
	assert.Equal(t, types.DateString("2025-06-25"), resp.Bookings[1].Date)
	assert.Equal(t, types.DateString("2025-07-02"), resp.Bookings[2].Date)
}

func TestService_GetUserBookings_CancelledFiltered(t *testing.T) {
	client := &fakeWorkflowClient{
		records: []domain.BookingRecord{
			{DeskID: 3, Date: "2025-06-18", UserEmail: "amy@corp.example", Status: domain.StatusBooked},
			{DeskID: 5, Date: "2025-06-19", UserEmail: "amy@corp.example", Status: domain.StatusCancelled},
		},
	}
	svc := NewService(client, nopLogger{})

	resp, err := svc.GetUserBookings(context.Background(), "amy@corp.example", false)
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, 3, resp.Bookings[0].DeskID)

	resp, err = svc.GetUserBookings(context.Background(), "amy@corp.example", true)
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 2)
}

func TestService_GetUserBookings_Errors(t *testing.T) {
	svc := NewService(&fakeWorkflowClient{err: errors.New("status 502")}, nopLogger{})

	_, err := svc.GetUserBookings(context.Background(), "amy@corp.example", false)
	assert.ErrorIs(t, err, ErrRemote)

	_, err = svc.GetUserBookings(context.Background(), "", false)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
