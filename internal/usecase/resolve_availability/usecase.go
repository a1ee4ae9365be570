package resolve_availability

import (
	"context"
	"fmt"

	"github.com/bluebird-hq/Bluebird-DeskService/internal/domain"
)

// UseCase use case получения доступности столов на дату.
//
// Кэширования между датами нет: каждый запрос даты выполняет свежий fetch
// из удалённого хранилища. Снапшот публикуется в viewstate store под
// поколением, выданным до fetch'а, поэтому поздний ответ вытесненного
// запроса не перезаписывает более новое состояние.
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

// Execute выполняет use case получения доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ResolveAvailability: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("ResolveAvailability: date=%s", req.Date)

	// 2. Выдаём поколение до начала fetch'а
	generation := uc.store.Begin(req.Date)

	// 3. Fetch записей бронирований на дату
	records, err := uc.workflowClient.GetBookingsByDate(ctx, req.Date)
	if err != nil {
		// Доступность неизвестна, бронирование по этому результату запрещено
		uc.logger.Error("ResolveAvailability: fetch failed for date=%s: %v", req.Date, err)
		return nil, fmt.Errorf("%w: %v", ErrAvailabilityUnknown, err)
	}

	// 4. Производим per-desk статусы из записей
	availability := domain.ResolveAvailability(req.Date, records)

	// 5. Публикуем снапшот; устаревшая публикация отбрасывается
	if !uc.store.Publish(req.Date, generation, availability) {
		uc.logger.Warn("ResolveAvailability: stale fetch discarded for date=%s (generation=%d)", req.Date, generation)
		if published, ok := uc.store.Snapshot(req.Date); ok {
			return &Response{Availability: published, Stale: true}, nil
		}
		// Снапшот успели инвалидировать, возвращаем свежевычисленный
		return &Response{Availability: availability, Stale: true}, nil
	}

	uc.logger.Info("ResolveAvailability: date=%s, available=%d, booked=%d",
		req.Date, availability.AvailableCount(), availability.BookedCount())

	return &Response{Availability: availability}, nil
}
