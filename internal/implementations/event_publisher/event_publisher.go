package eventpublisher

import (
	"context"
	"encoding/json"
	e "eventcal/internal/core/domain/errors"
	"eventcal/internal/core/domain/event"

	"github.com/r3labs/sse/v2"
)

// SSE publishes the full event set to subscribed browsers whenever it
// changes. Subscribers replace their local state with every message, so
// redelivery is harmless.
type SSE struct {
	sseServer *sse.Server
	streamID  string
}

func NewSSE(sseServer *sse.Server, streamID string) *SSE {
	if sseServer == nil {
		panic(e.NewNilArgumentError("sseServer"))
	}
	if streamID == "" {
		panic("streamID must not be empty")
	}
	return &SSE{sseServer: sseServer, streamID: streamID}
}

func (p *SSE) PublishEvents(ctx context.Context, events []event.Event) error {
	data, err := json.Marshal(events)
	if err != nil {
		return err
	}
	p.sseServer.Publish(p.streamID, &sse.Event{Data: data})
	return nil
}
