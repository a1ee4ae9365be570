package checkin

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bluebird-hq/Bluebird-DeskService/internal/domain"
	"github.com/bluebird-hq/Bluebird-DeskService/internal/service/checkin/models"
	"github.com/bluebird-hq/Bluebird-DeskService/pkg/ptr"
	"github.com/bluebird-hq/Bluebird-DeskService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeWorkflowClient struct {
	checkIns    []domain.CheckInRecord
	checkInsErr error
	bookings    []domain.BookingRecord
	bookingsErr error
	writeErr    error

	createdCheckIns []domain.CheckInRecord
	checkOutCalls   int
}

func (f *fakeWorkflowClient) GetBookingsByEmail(ctx context.Context, email string) ([]domain.BookingRecord, error) {
	return f.bookings, f.bookingsErr
}

func (f *fakeWorkflowClient) GetCheckIns(ctx context.Context, email string, date types.DateString) ([]domain.CheckInRecord, error) {
	return f.checkIns, f.checkInsErr
}

func (f *fakeWorkflowClient) CreateCheckIn(ctx context.Context, rec domain.CheckInRecord) error {
	f.createdCheckIns = append(f.createdCheckIns, rec)
	return f.writeErr
}

func (f *fakeWorkflowClient) CheckOut(ctx context.Context, email string, date types.DateString, checkOutTime time.Time) error {
	f.checkOutCalls++
	return f.writeErr
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

// 2025-06-18, среда
var testNow = time.Date(2025, 6, 18, 9, 30, 0, 0, time.Local)

func newTestService(client *fakeWorkflowClient) *Service {
	svc := NewService(client, nopLogger{})
	svc.timeProvider = fixedTime{now: testNow}
	return svc
}

func TestService_Status_NotCheckedIn(t *testing.T) {
	client := &fakeWorkflowClient{
		bookings: []domain.BookingRecord{
			{DeskID: 3, DeskName: "Desk 3", Date: "2025-06-18", UserEmail: "amy@corp.example", Status: domain.StatusBooked},
			// Завтрашняя бронь не попадает в сегодняшний список
			{DeskID: 3, DeskName: "Desk 3", Date: "2025-06-19", UserEmail: "amy@corp.example", Status: domain.StatusBooked},
			// Отменённая и уже превращённая в чек-ин тоже не попадают
			{DeskID: 5, Date: "2025-06-18", UserEmail: "amy@corp.example", Status: domain.StatusCancelled},
			{DeskID: 7, Date: "2025-06-18", UserEmail: "amy@corp.example", Status: domain.StatusCheckedIn},
		},
	}
	svc := newTestService(client)

	resp, err := svc.Status(context.Background(), "amy@corp.example")
	require.NoError(t, err)

	assert.Equal(t, types.DateString("2025-06-18"), resp.Date)
	assert.False(t, resp.CheckedIn)
	require.Len(t, resp.TodayBookings, 1)
	assert.Equal(t, 3, resp.TodayBookings[0].DeskID)
}

func TestService_Status_CheckedIn(t *testing.T) {
	client := &fakeWorkflowClient{
		checkIns: []domain.CheckInRecord{
			{UserEmail: "amy@corp.example", Location: "Office", DeskID: 3, Date: "2025-06-18"},
		},
	}
	svc := newTestService(client)

	resp, err := svc.Status(context.Background(), "amy@corp.example")
	require.NoError(t, err)

	assert.True(t, resp.CheckedIn)
	assert.False(t, resp.CheckedOut)
	assert.Equal(t, "Office", resp.Location)
	// После чек-ина сегодняшние бронирования не показываются
	assert.Empty(t, resp.TodayBookings)
}

func TestService_Status_TimezoneShiftedDateIsNotToday(t *testing.T) {
	// Запись той же календарной сущности, но со сдвинутой зоной
	// представлением даты - не сегодняшняя
	client := &fakeWorkflowClient{
		checkIns: []domain.CheckInRecord{
			{UserEmail: "amy@corp.example", Location: "Office", Date: "2025-06-17"},
		},
	}
	svc := newTestService(client)

	resp, err := svc.Status(context.Background(), "amy@corp.example")
	require.NoError(t, err)
	assert.False(t, resp.CheckedIn)
}

func TestService_CheckIn_Office(t *testing.T) {
	client := &fakeWorkflowClient{}
	svc := newTestService(client)

	resp, err := svc.CheckIn(context.Background(), "amy@corp.example", "Amy", &models.CheckInRequest{
		Location: "Office",
		DeskID:   4,
	})
	require.NoError(t, err)

	assert.Equal(t, 4, resp.DeskID)
	require.Len(t, client.createdCheckIns, 1)
	created := client.createdCheckIns[0]
	assert.Equal(t, 4, created.DeskID)
	assert.Equal(t, "Office", created.Location)
	assert.Equal(t, types.DateString("2025-06-18"), created.Date)
	assert.Equal(t, "Amy", created.UserName)
}

func TestService_CheckIn_NonOfficeZeroesDesk(t *testing.T) {
	client := &fakeWorkflowClient{}
	svc := newTestService(client)

	resp, err := svc.CheckIn(context.Background(), "amy@corp.example", "Amy", &models.CheckInRequest{
		Location: "Home",
		DeskID:   4,
	})
	require.NoError(t, err)

	assert.Equal(t, 0, resp.DeskID)
	require.Len(t, client.createdCheckIns, 1)
	assert.Equal(t, 0, client.createdCheckIns[0].DeskID)
}

func TestService_CheckIn_AlreadyCheckedIn(t *testing.T) {
	client := &fakeWorkflowClient{
		checkIns: []domain.CheckInRecord{
			{UserEmail: "amy@corp.example", Location: "Home", Date: "2025-06-18"},
		},
	}
	svc := newTestService(client)

	_, err := svc.CheckIn(context.Background(), "amy@corp.example", "Amy", &models.CheckInRequest{Location: "Office", DeskID: 4})

	assert.ErrorIs(t, err, ErrAlreadyCheckedIn)
	assert.Empty(t, client.createdCheckIns)
}

func TestService_CheckIn_Validation(t *testing.T) {
	svc := newTestService(&fakeWorkflowClient{})

	_, err := svc.CheckIn(context.Background(), "amy@corp.example", "Amy", &models.CheckInRequest{Location: ""})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.CheckIn(context.Background(), "amy@corp.example", "Amy", &models.CheckInRequest{Location: "Office", DeskID: 42})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_CheckOut_Success(t *testing.T) {
	client := &fakeWorkflowClient{
		checkIns: []domain.CheckInRecord{
			{UserEmail: "amy@corp.example", Location: "Office", DeskID: 3, Date: "2025-06-18"},
		},
	}
	svc := newTestService(client)

	resp, err := svc.CheckOut(context.Background(), "amy@corp.example")
	require.NoError(t, err)

	assert.Equal(t, 1, client.checkOutCalls)
	assert.Equal(t, types.DateString("2025-06-18"), resp.Date)
	assert.Equal(t, testNow.Format(time.RFC3339), resp.CheckOutTime)
}

func TestService_CheckOut_NotCheckedIn(t *testing.T) {
	client := &fakeWorkflowClient{}
	svc := newTestService(client)

	_, err := svc.CheckOut(context.Background(), "amy@corp.example")

	assert.ErrorIs(t, err, ErrNotCheckedIn)
	assert.Equal(t, 0, client.checkOutCalls)
}

func TestService_CheckOut_AlreadyCheckedOut(t *testing.T) {
	client := &fakeWorkflowClient{
		checkIns: []domain.CheckInRecord{
			{
				UserEmail:    "amy@corp.example",
				Location:     "Office",
				Date:         "2025-06-18",
				CheckOutTime: ptr.Ptr("2025-06-18T12:00:00+10:00"),
			},
		},
	}
	svc := newTestService(client)

	_, err := svc.CheckOut(context.Background(), "amy@corp.example")

	assert.ErrorIs(t, err, ErrAlreadyCheckedOut)
	assert.Equal(t, 0, client.checkOutCalls)
}

func TestService_RemoteErrorsWrapped(t *testing.T) {
	client := &fakeWorkflowClient{checkInsErr: errors.New("status 502")}
	svc := newTestService(client)

	_, err := svc.Status(context.Background(), "amy@corp.example")
	assert.ErrorIs(t, err, ErrRemote)

	_, err = svc.CheckOut(context.Background(), "amy@corp.example")
	assert.ErrorIs(t, err, ErrRemote)
}
