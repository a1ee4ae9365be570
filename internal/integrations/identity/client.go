package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент провайдера идентификации. Токены выдаёт и валидирует сам
// провайдер; клиент лишь обменивает bearer-токен на профиль пользователя.
// Модель авторизации сервиса: "токен присутствует и резолвится в профиль".
type Client struct {
	profileURL string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента провайдера идентификации
func NewClient(profileURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		profileURL: profileURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Resolve обменивает bearer-токен на идентичность пользователя
func (c *Client) Resolve(ctx context.Context, token string) (*UserIdentity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.profileURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %v", ErrInternal, err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("identity: transport failure: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, ErrUnauthorized
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var profile profileResponse
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("%w: failed to decode profile: %v", ErrInvalidResponse, err)
	}

	user := profile.toIdentity()
	if user.Email == "" {
		return nil, fmt.Errorf("%w: profile has no email", ErrInvalidResponse)
	}

	return &user, nil
}
