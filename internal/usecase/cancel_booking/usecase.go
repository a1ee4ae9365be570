package cancel_booking

import (
	"context"
	"fmt"

	"github.com/bluebird-hq/Bluebird-DeskService/internal/domain"
)

// UseCase use case отмены бронирования. Пользователь может отменить только
// собственную активную бронь: принадлежность проверяется свежим fetch'ем
// его записей. Сама запись живёт в удалённом хранилище, локально после
// отмены инвалидируется снапшот даты.
type UseCase struct {
	workflowClient WorkflowClient
	store          SnapshotStore
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(workflowClient WorkflowClient, store SnapshotStore, logger Logger) *UseCase {
	return &UseCase{
		workflowClient: workflowClient,
		store:          store,
		logger:         logger,
	}
}

// Execute выполняет use case отмены бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CancelBooking: date=%s, desk=%d, user=%s", req.Date, req.DeskID, req.UserEmail)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CancelBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем, что бронирование существует и принадлежит пользователю
	records, err := uc.workflowClient.GetBookingsByEmail(ctx, req.UserEmail)
	if err != nil {
		uc.logger.Error("CancelBooking: failed to fetch bookings for user=%s: %v", req.UserEmail, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	if !holdsActiveBooking(records, req) {
		uc.logger.Warn("CancelBooking: no active booking for user=%s desk=%d date=%s",
			req.UserEmail, req.DeskID, req.Date)
		return nil, ErrBookingNotFound
	}

	// 3. Отменяем в удалённом хранилище
	if err := uc.workflowClient.CancelBooking(ctx, req.Date, req.UserEmail, req.DeskID); err != nil {
		uc.logger.Error("CancelBooking: cancel failed for user=%s desk=%d date=%s: %v",
			req.UserEmail, req.DeskID, req.Date, err)
		return nil, fmt.Errorf("%w: %v", ErrCancelFailed, err)
	}

	// 4. Снапшот даты устарел, следующее чтение сделает свежий fetch
	uc.store.Invalidate(req.Date)

	uc.logger.Info("CancelBooking: cancelled desk=%d date=%s user=%s", req.DeskID, req.Date, req.UserEmail)

	return &Response{Date: req.Date, DeskID: req.DeskID}, nil
}

// holdsActiveBooking проверяет наличие активной брони пользователя
// на указанный стол и дату
func holdsActiveBooking(records []domain.BookingRecord, req *Request) bool {
	for i := range records {
		rec := &records[i]
		if rec.DeskID == req.DeskID && rec.Date == req.Date && rec.BelongsTo(req.UserEmail) && rec.IsActive() {
			return true
		}
	}
	return false
}
