package service

import (
	"bytes"
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/dentamatch/marketplace/internal/events"
)

// publishEvent pushes a notification event without ever failing the
// workflow; delivery is fire-and-forget.
func publishEvent(ctx context.Context, ew *events.EventProducer, kind string, payload any) {
	if ew == nil {
		return
	}

	data, err := json.Marshal(payload)
	if err != nil {
		zap.S().Named("service").Errorw("failed to marshal event", "error", err, "event_kind", kind)
		return
	}

	if err := ew.Write(ctx, kind, bytes.NewBuffer(data)); err != nil {
		zap.S().Named("service").Errorw("failed to write event", "error", err, "event_kind", kind)
	}
}
