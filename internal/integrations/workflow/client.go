package workflow

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bluebird-hq/Bluebird-DeskService/internal/config"
	"github.com/bluebird-hq/Bluebird-DeskService/internal/domain"
	"github.com/bluebird-hq/Bluebird-DeskService/pkg/types"
)

// Результаты вызова для метрик
const (
	resultOK             = "ok"
	resultRejected       = "rejected"
	resultTransportError = "transport_error"
)

// Client клиент удалённого хранилища бронирований и чек-инов.
// Каждая операция живёт за собственным HTTP-триггером (Logic Apps),
// все вызовы - POST с JSON телом. Endpoint'ы считаются чёрными ящиками:
// схема ошибок не документирована, тело ошибки может быть не-JSON.
type Client struct {
	cfg        config.WorkflowConfig
	httpClient *http.Client
	log        Logger
	metrics    Metrics // nil, если метрики выключены
}

// NewClient создает новый экземпляр клиента workflow-endpoints
func NewClient(cfg config.WorkflowConfig, log Logger, metrics Metrics) *Client {
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
		log:     log,
		metrics: metrics,
	}
}

// GetBookingsByDate получает все записи бронирований на указанную дату
func (c *Client) GetBookingsByDate(ctx context.Context, date types.DateString) ([]domain.BookingRecord, error) {
	var dtos []BookingDTO
	err := c.call(ctx, "bookings_by_date", c.cfg.BookingsByDateURL,
		bookingsByDateRequest{Date: date.String()}, &dtos)
	if err != nil {
		return nil, err
	}
	return toDomainBookings(dtos), nil
}

// GetBookingsByEmail получает все записи бронирований пользователя
func (c *Client) GetBookingsByEmail(ctx context.Context, email string) ([]domain.BookingRecord, error) {
	var dtos []BookingDTO
	err := c.call(ctx, "bookings_by_email", c.cfg.BookingsByEmailURL,
		bookingsByEmailRequest{Email: email}, &dtos)
	if err != nil {
		return nil, err
	}
	return toDomainBookings(dtos), nil
}

// CreateBooking записывает бронирование в удалённое хранилище.
// Ответ endpoint'а - свободный текст, тело успешного ответа игнорируется.
func (c *Client) CreateBooking(ctx context.Context, req CreateBookingRequest) error {
	return c.call(ctx, "create_booking", c.cfg.CreateBookingURL, req, nil)
}

// CancelBooking отменяет бронирование пользователя на дату
func (c *Client) CancelBooking(ctx context.Context, date types.DateString, email string, deskID int) error {
	return c.call(ctx, "cancel_booking", c.cfg.CancelBookingURL, cancelBookingRequest{
		Date:      date.String(),
		UserEmail: email,
		DeskID:    deskID,
	}, nil)
}

// GetCheckIns получает записи чек-инов пользователя.
// Endpoint принимает дату как подсказку фильтрации, но вызывающая сторона
// обязана фильтровать записи по точному строковому равенству даты сама.
func (c *Client) GetCheckIns(ctx context.Context, email string, date types.DateString) ([]domain.CheckInRecord, error) {
	var dtos []CheckInDTO
	err := c.call(ctx, "checkins", c.cfg.CheckInsURL,
		checkInsRequest{UserEmail: email, Date: date.String()}, &dtos)
	if err != nil {
		return nil, err
	}
	records := make([]domain.CheckInRecord, 0, len(dtos))
	for i := range dtos {
		records = append(records, dtos[i].ToDomain())
	}
	return records, nil
}

// CreateCheckIn записывает чек-ин пользователя
func (c *Client) CreateCheckIn(ctx context.Context, rec domain.CheckInRecord) error {
	return c.call(ctx, "create_checkin", c.cfg.CreateCheckInURL, createCheckInRequest{
		DeskID:   rec.DeskID,
		Email:    rec.UserEmail,
		User:     rec.UserName,
		Location: rec.Location,
		Date:     rec.Date.String(),
	}, nil)
}

// CheckOut проставляет время check-out на сегодняшней записи чек-ина
func (c *Client) CheckOut(ctx context.Context, email string, date types.DateString, checkOutTime time.Time) error {
	return c.call(ctx, "checkout", c.cfg.CheckOutURL, checkOutRequest{
		UserEmail:    email,
		Date:         date.String(),
		CheckOutTime: checkOutTime.Format(time.RFC3339),
	}, nil)
}

// call выполняет POST запрос к endpoint'у и декодирует ответ в out (если не nil)
func (c *Client) call(ctx context.Context, operation, url string, payload interface{}, out interface{}) error {
	start := time.Now()
	result, err := c.doCall(ctx, operation, url, payload, out)
	if c.metrics != nil {
		c.metrics.ObserveWorkflowCall(operation, result, time.Since(start))
	}
	return err
}

func (c *Client) doCall(ctx context.Context, operation, url string, payload interface{}, out interface{}) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return resultTransportError, fmt.Errorf("%w: %s - marshal request: %v", ErrInternal, operation, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return resultTransportError, fmt.Errorf("%w: %s - create request: %v", ErrInternal, operation, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("workflow %s: transport failure: %v", operation, err)
		return resultTransportError, fmt.Errorf("%w: %s: %v", ErrTransport, operation, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		// Тело ошибки свободного формата, включаем как есть
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.log.Warn("workflow %s: rejected with status %d: %s", operation, resp.StatusCode, string(raw))
		return resultRejected, fmt.Errorf("%w: %s: status %d: %s", ErrRemoteRejected, operation, resp.StatusCode, string(raw))
	}

	if out == nil {
		// Успешный ответ со свободным текстом, тело не разбираем
		_, _ = io.Copy(io.Discard, resp.Body)
		return resultOK, nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.log.Error("workflow %s: failed to decode response: %v", operation, err)
		return resultOK, fmt.Errorf("%w: %s: decode response: %v", ErrInvalidResponse, operation, err)
	}

	return resultOK, nil
}

func toDomainBookings(dtos []BookingDTO) []domain.BookingRecord {
	records := make([]domain.BookingRecord, 0, len(dtos))
	for i := range dtos {
		records = append(records, dtos[i].ToDomain())
	}
	return records
}
