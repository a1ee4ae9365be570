package reports

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bluebird-hq/Bluebird-DeskService/internal/domain"
	"github.com/bluebird-hq/Bluebird-DeskService/internal/service/reports/models"
	"github.com/bluebird-hq/Bluebird-DeskService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

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

func TestService_Usage_OneWeek(t *testing.T) {
	// 2025-06-16 (понедельник) .. 2025-06-22 (воскресенье): 5 рабочих дней
	client := &fakeWorkflowClient{
		byDate: map[types.DateString][]domain.BookingRecord{
			"2025-06-16": {
				{DeskID: 3, Date: "2025-06-16", UserEmail: "amy@corp.example", Status: domain.StatusBooked},
				{DeskID: 7, Date: "2025-06-16", UserEmail: "bob@corp.example", Status: domain.StatusCheckedIn},
			},
			"2025-06-17": {
				{DeskID: 3, Date: "2025-06-17", UserEmail: "amy@corp.example", Status: domain.StatusBooked},
				// Отменённая запись не считается
				{DeskID: 5, Date: "2025-06-17", UserEmail: "eve@corp.example", Status: domain.StatusCancelled},
			},
			// Запись выходного дня существует, но не запрашивается вовсе
			"2025-06-21": {
				{DeskID: 1, Date: "2025-06-21", UserEmail: "eve@corp.example", Status: domain.StatusBooked},
			},
		},
	}
	svc := NewService(client, nopLogger{})

	resp, err := svc.Usage(context.Background(), &models.UsageRequest{From: "2025-06-16", To: "2025-06-22"})
	require.NoError(t, err)

	assert.Equal(t, 5, resp.WorkingDays)
	assert.Equal(t, 3, resp.TotalBookings)
	assert.Equal(t, 3, resp.BusiestDeskID)
	assert.Empty(t, resp.SkippedDates)

	// 3 бронирования / (5 дней * 10 столов)
	assert.InDelta(t, 6.0, resp.UtilizationRate, 0.001)

	// Выходные не запрашивались
	assert.NotContains(t, client.fetchedDates, types.DateString("2025-06-21"))
	assert.NotContains(t, client.fetchedDates, types.DateString("2025-06-22"))
	assert.Len(t, client.fetchedDates, 5)

	// Агрегаты по всем столам инвентаря, включая нулевые
	require.Len(t, resp.Desks, domain.TotalDesks)
	assert.Equal(t, 2, resp.Desks[2].Bookings) // Desk 3
	assert.Equal(t, 1, resp.Desks[6].Bookings) // Desk 7
	assert.Equal(t, 0, resp.Desks[0].Bookings)
}

func TestService_Usage_FailedDaysSkipped(t *testing.T) {
	client := &fakeWorkflowClient{
		byDate: map[types.DateString][]domain.BookingRecord{
			"2025-06-16": {{DeskID: 3, Date: "2025-06-16", UserEmail: "amy@corp.example", Status: domain.StatusBooked}},
		},
		errDates: map[types.DateString]error{
			"2025-06-17": errors.New("status 502"),
		},
	}
	svc := NewService(client, nopLogger{})

	resp, err := svc.Usage(context.Background(), &models.UsageRequest{From: "2025-06-16", To: "2025-06-17"})
	require.NoError(t, err)

	// Неудавшийся день исключён из агрегатов и перечислен отдельно
	assert.Equal(t, 1, resp.WorkingDays)
	assert.Equal(t, 1, resp.TotalBookings)
	assert.Equal(t, []types.DateString{"2025-06-17"}, resp.SkippedDates)
	assert.InDelta(t, 10.0, resp.UtilizationRate, 0.001)
}

func TestService_Usage_NoBookings(t *testing.T) {
	svc := NewService(&fakeWorkflowClient{}, nopLogger{})

	resp, err := svc.Usage(context.Background(), &models.UsageRequest{From: "2025-06-16", To: "2025-06-17"})
	require.NoError(t, err)

	assert.Equal(t, 0, resp.TotalBookings)
	assert.Equal(t, 0, resp.BusiestDeskID)
	assert.Zero(t, resp.UtilizationRate)
}

func TestService_Usage_WeekendOnlyRange(t *testing.T) {
	client := &fakeWorkflowClient{}
	svc := NewService(client, nopLogger{})

	resp, err := svc.Usage(context.Background(), &models.UsageRequest{From: "2025-06-21", To: "2025-06-22"})
	require.NoError(t, err)

	assert.Equal(t, 0, resp.WorkingDays)
	assert.Zero(t, resp.UtilizationRate)
	assert.Empty(t, client.fetchedDates)
}

func TestService_Usage_Validation(t *testing.T) {
	svc := NewService(&fakeWorkflowClient{}, nopLogger{})

	_, err := svc.Usage(context.Background(), &models.UsageRequest{From: "2025-06-17", To: "2025-06-16"})
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = svc.Usage(context.Background(), &models.UsageRequest{From: "2025-01-01", To: "2025-06-30"})
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = svc.Usage(context.Background(), &models.UsageRequest{From: "", To: "2025-06-16"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Usage(context.Background(), &models.UsageRequest{From: "16/06/2025", To: "2025-06-17"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
