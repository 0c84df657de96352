package broker

import (
	"context"
	"time"
)

type Producer interface {
	SendMessage(ctx context.Context, key string, value []byte) error
}

// RunEvent describes one finished report run. It never carries result rows.
type RunEvent struct {
	App        string    `json:"app"`
	Report     string    `json:"report"`
	Status     string    `json:"status"`
	Rows       int       `json:"rows"`
	DurationMs int64     `json:"duration_ms"`
	Error      string    `json:"error,omitempty"`
	FinishedAt time.Time `json:"finished_at"`
}

type NopProducer struct{}

func (NopProducer) SendMessage(context.Context, string, []byte) error {
	return nil
}
