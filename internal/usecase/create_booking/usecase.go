package create_booking

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/bluebird-hq/Bluebird-DeskService/internal/domain"
	"github.com/bluebird-hq/Bluebird-DeskService/internal/integrations/workflow"
)

// UseCase use case создания бронирования.
//
// Инвариант "не более одного активного бронирования на (стол, дату)"
// принадлежит удалённому хранилищу. Клиентская проверка перед записью -
// best-effort: свежий fetch непосредственно перед записью, не транзакция.
// Локальное состояние обновляется двухфазно: предварительная пометка до
// записи, подтверждение при успехе, откат при отказе.
type UseCase struct {
	workflowClient WorkflowClient
	store          SnapshotStore
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(workflowClient WorkflowClient, store SnapshotStore, logger Logger) *UseCase {
	return &UseCase{
		workflowClient: workflowClient,
		store:          store,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: date=%s, desk=%d, user=%s", req.Date, req.DeskID, req.UserEmail)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем окно бронирования
	now := uc.timeProvider.Now()
	if err := validateDateWindow(req.Date, now); err != nil {
		uc.logger.Warn("CreateBooking: date window validation failed: %v", err)
		return nil, err
	}

	desk, ok := domain.DeskByID(req.DeskID)
	if !ok {
		return nil, fmt.Errorf("%w: desk id %d", ErrDeskNotFound, req.DeskID)
	}

	// 3. Свежий fetch доступности непосредственно перед записью
	generation := uc.store.Begin(req.Date)

	records, err := uc.workflowClient.GetBookingsByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("CreateBooking: availability check failed for date=%s: %v", req.Date, err)
		return nil, fmt.Errorf("%w: %v", ErrAvailabilityUnknown, err)
	}

	availability := domain.ResolveAvailability(req.Date, records)
	uc.store.Publish(req.Date, generation, availability)

	// 4. Локальные предусловия: отказ без обращения к write endpoint
	if availability.UserHoldsBooking(req.UserEmail) {
		uc.logger.Warn("CreateBooking: user=%s already holds a booking on date=%s", req.UserEmail, req.Date)
		return nil, ErrUserAlreadyBooked
	}

	status, ok := availability.DeskByID(req.DeskID)
	if !ok {
		return nil, fmt.Errorf("%w: desk id %d", ErrDeskNotFound, req.DeskID)
	}
	if !status.IsAvailable() {
		uc.logger.Warn("CreateBooking: desk=%d already booked on date=%s", req.DeskID, req.Date)
		return nil, ErrDeskAlreadyBooked
	}

	// 5. Предварительная пометка стола занятым
	occupant := domain.Occupant{Email: req.UserEmail, Name: req.UserName}
	if err := uc.store.MarkTentative(req.Date, req.DeskID, occupant); err != nil {
		uc.logger.Warn("CreateBooking: tentative mark failed for desk=%d date=%s: %v", req.DeskID, req.Date, err)
		return nil, ErrDeskAlreadyBooked
	}

	// 6. Запись в удалённое хранилище с клиентским идемпотентным ключом
	requestID := uuid.NewString()

	writeReq := workflow.CreateBookingRequest{
		RequestID: requestID,
		DeskID:    desk.ID,
		DeskName:  desk.Name,
		Date:      req.Date.String(),
		UserEmail: req.UserEmail,
		Status:    string(domain.StatusBooked),
		User:      req.UserName,
	}

	if err := uc.workflowClient.CreateBooking(ctx, writeReq); err != nil {
		// Откатываем пометку, локальное состояние остаётся без изменений
		if rbErr := uc.store.Rollback(req.Date, req.DeskID); rbErr != nil {
			uc.logger.Error("CreateBooking: rollback failed for desk=%d date=%s: %v", req.DeskID, req.Date, rbErr)
		}
		uc.logger.Error("CreateBooking: write failed for desk=%d date=%s request_id=%s: %v",
			req.DeskID, req.Date, requestID, err)
		return nil, fmt.Errorf("%w: %v", ErrSubmitFailed, err)
	}

	// 7. Подтверждаем пометку
	if err := uc.store.Confirm(req.Date, req.DeskID); err != nil {
		uc.logger.Error("CreateBooking: confirm failed for desk=%d date=%s: %v", req.DeskID, req.Date, err)
	}

	uc.logger.Info("CreateBooking: booked desk=%d date=%s user=%s request_id=%s",
		req.DeskID, req.Date, req.UserEmail, requestID)

	return &Response{
		RequestID: requestID,
		Date:      req.Date,
		DeskID:    desk.ID,
		DeskName:  desk.Name,
		UserEmail: req.UserEmail,
		UserName:  req.UserName,
		Status:    string(domain.StatusBooked),
	}, nil
}
