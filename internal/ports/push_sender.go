package ports

import "context"

// A push message for the driver's device. Data carries the deep-link
// payload {type, panierId, depotId}.
type PushMessage struct {
	Title string
	Body  string
	Data  map[string]string
}

// Contract for best-effort push delivery. Send failures are logged by the
// caller and never roll back the persisted mutation that triggered them.
type PushSender interface {
	Send(ctx context.Context, msg PushMessage) error
}
