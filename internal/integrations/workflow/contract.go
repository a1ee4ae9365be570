package workflow

import "time"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Metrics интерфейс для учёта исходящих вызовов workflow-endpoints
type Metrics interface {
	ObserveWorkflowCall(operation, result string, duration time.Duration)
}
