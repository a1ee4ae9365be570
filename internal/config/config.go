package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config корневая конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Identity IdentityConfig `toml:"identity"`
	Workflow WorkflowConfig `toml:"workflow"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// IdentityConfig настройки клиента провайдера идентификации (Microsoft Graph)
type IdentityConfig struct {
	ProfileURL string `toml:"profile_url"`
	Timeout    int    `toml:"timeout"` // секунды
}

// WorkflowConfig настройки клиента workflow-endpoints (удалённое хранилище
// бронирований и чек-инов). Каждая операция живёт за собственным HTTP-триггером,
// поэтому конфигурируются полные URL, а не base URL + путь.
type WorkflowConfig struct {
	BookingsByDateURL  string `toml:"bookings_by_date_url"`
	BookingsByEmailURL string `toml:"bookings_by_email_url"`
	CreateBookingURL   string `toml:"create_booking_url"`
	CancelBookingURL   string `toml:"cancel_booking_url"`
	CheckInsURL        string `toml:"checkins_url"`
	CreateCheckInURL   string `toml:"create_checkin_url"`
	CheckOutURL        string `toml:"checkout_url"`
	Timeout            int    `toml:"timeout"` // секунды
}

// Load загружает конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 30
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 15
	}
	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "desk-booking-service"
	}
	if c.Identity.Timeout == 0 {
		c.Identity.Timeout = 10
	}
	if c.Workflow.Timeout == 0 {
		c.Workflow.Timeout = 15
	}
}

func (c *Config) validate() error {
	if c.Identity.ProfileURL == "" {
		return fmt.Errorf("config: identity.profile_url is required")
	}

	required := map[string]string{
		"workflow.bookings_by_date_url":  c.Workflow.BookingsByDateURL,
		"workflow.bookings_by_email_url": c.Workflow.BookingsByEmailURL,
		"workflow.create_booking_url":    c.Workflow.CreateBookingURL,
		"workflow.cancel_booking_url":    c.Workflow.CancelBookingURL,
		"workflow.checkins_url":          c.Workflow.CheckInsURL,
		"workflow.create_checkin_url":    c.Workflow.CreateCheckInURL,
		"workflow.checkout_url":          c.Workflow.CheckOutURL,
	}
	for name, value := range required {
		if value == "" {
			return fmt.Errorf("config: %s is required", name)
		}
	}

	return nil
}
