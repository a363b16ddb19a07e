package fetch

import (
	"context"
	"errors"
	"net"
	"strings"
	"syscall"

	"github.com/sells-group/contact-cli/internal/model"
)

// Classify maps a fetch failure to its ErrorKind for the source result
// record. The mapping is best-effort; unknown failures count as connection
// errors since that is the common transport case.
func Classify(err error) model.ErrorKind {
	if err == nil {
		return model.ErrNone
	}

	var se *StatusError
	if errors.As(err, &se) {
		return model.ErrStatus
	}
	var be *BlockedError
	if errors.As(err, &be) {
		return model.ErrBlocked
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return model.ErrTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return model.ErrTimeout
	}

	if errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNABORTED) {
		return model.ErrConnection
	}

	// String heuristics for errors wrapped by HTTP clients.
	msg := strings.ToLower(err.Error())
	for _, p := range []string{"timeout", "deadline exceeded"} {
		if strings.Contains(msg, p) {
			return model.ErrTimeout
		}
	}
	for _, p := range []string{"status ", "unexpected status"} {
		if strings.Contains(msg, p) {
			return model.ErrStatus
		}
	}

	return model.ErrConnection
}
