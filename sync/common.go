package sync

import (
	"time"

	"github.com/0xPolygon/postman/log"
)

// RetryHandler paces the retries of a startup step and gives up, killing the process, after
// MaxRetryAttemptsAfterError failures. A negative MaxRetryAttemptsAfterError retries forever
type RetryHandler struct {
	RetryAfterErrorPeriod      time.Duration
	MaxRetryAttemptsAfterError int
}

func (h *RetryHandler) Handle(funcName string, attempts int) {
	if h.MaxRetryAttemptsAfterError > -1 && attempts >= h.MaxRetryAttemptsAfterError {
		log.Fatalf(
			"%s failed too many times (%d)",
			funcName, h.MaxRetryAttemptsAfterError,
		)
	}
	time.Sleep(h.RetryAfterErrorPeriod)
}
