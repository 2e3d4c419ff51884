package backend

import (
	"fmt"
	"log/slog"

	"github.com/mmcdole/muse/internal/domain"
)

// Logging wraps next, logging every request at debug level
func Logging(next domain.Requester, logger *slog.Logger) domain.Requester {
	if logger == nil {
		logger = slog.Default()
	}
	return domain.RequesterFunc(func(req domain.Request) {
		logger.Debug("request", "channel", req.Channel(), "type", fmt.Sprintf("%T", req))
		next.Send(req)
	})
}

// Discard drops every request. Replayed sessions have no backend to talk to.
var Discard domain.Requester = domain.RequesterFunc(func(domain.Request) {})
