package create_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bluebird-hq/Bluebird-DeskService/internal/domain"
	"github.com/bluebird-hq/Bluebird-DeskService/internal/integrations/workflow"
	"github.com/bluebird-hq/Bluebird-DeskService/internal/store/viewstate"
	"github.com/bluebird-hq/Bluebird-DeskService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// fakeWorkflowClient управляемый клиент хранилища для тестов
type fakeWorkflowClient struct {
	records  []domain.BookingRecord
	fetchErr error
	writeErr error

	writeCalls []workflow.CreateBookingRequest
}

func (f *fakeWorkflowClient) GetBookingsByDate(ctx context.Context, date types.DateString) ([]domain.BookingRecord, error) {
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return f.records, nil
}

func (f *fakeWorkflowClient) CreateBooking(ctx context.Context, req workflow.CreateBookingRequest) error {
	f.writeCalls = append(f.writeCalls, req)
	return f.writeErr
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

var testNow = time.Date(2025, 6, 16, 9, 0, 0, 0, time.Local)

func newTestUseCase(client *fakeWorkflowClient) (*UseCase, *viewstate.Store) {
	store := viewstate.NewStore()
	uc := NewUseCase(client, store, nopLogger{})
	uc.timeProvider = fixedTime{now: testNow}
	return uc, store
}

func validRequest() *Request {
	return &Request{
		Date:      "2025-06-18",
		DeskID:    3,
		UserEmail: "amy@corp.example",
		UserName:  "Amy",
	}
}

func TestUseCase_Execute_Success(t *testing.T) {
	client := &fakeWorkflowClient{}
	uc, store := newTestUseCase(client)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, resp.RequestID)
	assert.Equal(t, 3, resp.DeskID)
	assert.Equal(t, "Desk 3", resp.DeskName)
	assert.Equal(t, string(domain.StatusBooked), resp.Status)

	// Запись ушла в хранилище с теми же полями и идемпотентным ключом
	require.Len(t, client.writeCalls, 1)
	write := client.writeCalls[0]
	assert.Equal(t, resp.RequestID, write.RequestID)
	assert.Equal(t, "2025-06-18", write.Date)
	assert.Equal(t, "Amy", write.User)

	// Локальный снапшот показывает стол занятым
	snap, ok := store.Snapshot("2025-06-18")
	require.True(t, ok)
	status, ok := snap.DeskByID(3)
	require.True(t, ok)
	assert.Equal(t, domain.DeskBooked, status.Status)
}

func TestUseCase_Execute_DeskAlreadyBooked_NoWrite(t *testing.T) {
	client := &fakeWorkflowClient{
		records: []domain.BookingRecord{
			{DeskID: 3, Date: "2025-06-18", UserEmail: "bob@corp.example", Status: domain.StatusBooked},
		},
	}
	uc, _ := newTestUseCase(client)

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrDeskAlreadyBooked)
	// Локальный отказ: обращения к write endpoint не было
	assert.Empty(t, client.writeCalls)
}

func TestUseCase_Execute_UserAlreadyBooked_NoWrite(t *testing.T) {
	client := &fakeWorkflowClient{
		records: []domain.BookingRecord{
			{DeskID: 7, Date: "2025-06-18", UserEmail: "amy@corp.example", Status: domain.StatusBooked},
		},
	}
	uc, _ := newTestUseCase(client)

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrUserAlreadyBooked)
	assert.Empty(t, client.writeCalls)
}

func TestUseCase_Execute_FetchFailure_NoWrite(t *testing.T) {
	client := &fakeWorkflowClient{fetchErr: errors.New("connection refused")}
	uc, _ := newTestUseCase(client)

	_, err := uc.Execute(context.Background(), validRequest())

	// Доступность неизвестна - бронирование не выполняется
	assert.ErrorIs(t, err, ErrAvailabilityUnknown)
	assert.Empty(t, client.writeCalls)
}

func TestUseCase_Execute_WriteFailure_RollsBack(t *testing.T) {
	client := &fakeWorkflowClient{writeErr: errors.New("status 502")}
	uc, store := newTestUseCase(client)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSubmitFailed)

	// Предварительная пометка откачена, стол снова свободен
	snap, ok := store.Snapshot("2025-06-18")
	require.True(t, ok)
	status, ok := snap.DeskByID(3)
	require.True(t, ok)
	assert.Equal(t, domain.DeskAvailable, status.Status)
}

func TestUseCase_Execute_DateWindow(t *testing.T) {
	tests := []struct {
		name    string
		date    types.DateString
		wantErr error
	}{
		{name: "past date", date: "2025-06-15", wantErr: ErrInvalidDate},
		{name: "today", date: "2025-06-16", wantErr: nil},
		{name: "horizon boundary", date: "2025-09-14", wantErr: nil},
		{name: "beyond horizon", date: "2025-09-15", wantErr: ErrDateTooFarInFuture},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _ := newTestUseCase(&fakeWorkflowClient{})

			req := validRequest()
			req.Date = tt.date

			_, err := uc.Execute(context.Background(), req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUseCase_Execute_Validation(t *testing.T) {
	uc, _ := newTestUseCase(&fakeWorkflowClient{})

	req := validRequest()
	req.Date = "18/06/2025"
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = validRequest()
	req.DeskID = 11
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrDeskNotFound)

	req = validRequest()
	req.UserEmail = ""
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUseCase_Execute_UniqueRequestIDs(t *testing.T) {
	client := &fakeWorkflowClient{}
	uc, _ := newTestUseCase(client)

	first, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	second, err := uc.Execute(context.Background(), &Request{
		Date:      "2025-06-19",
		DeskID:    3,
		UserEmail: "amy@corp.example",
		UserName:  "Amy",
	})
	require.NoError(t, err)

	// Каждая попытка записи получает собственный идемпотентный ключ
	assert.NotEqual(t, first.RequestID, second.RequestID)
}
