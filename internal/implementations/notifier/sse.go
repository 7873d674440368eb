package notifier

import (
	"context"
	"encoding/json"
	e "eventcal/internal/core/domain/errors"

	"github.com/r3labs/sse/v2"
)

// SSENotifier pushes notifications to subscribed browsers over a
// server-sent events stream.
type SSENotifier struct {
	sseServer *sse.Server
	streamID  string
}

func NewSSE(sseServer *sse.Server, streamID string) *SSENotifier {
	if sseServer == nil {
		panic(e.NewNilArgumentError("sseServer"))
	}
	if streamID == "" {
		panic("streamID must not be empty")
	}
	return &SSENotifier{sseServer: sseServer, streamID: streamID}
}

func (n *SSENotifier) Show(ctx context.Context, title string, body string) error {
	data, err := json.Marshal(notification{Title: title, Body: body})
	if err != nil {
		return err
	}
	n.sseServer.Publish(n.streamID, &sse.Event{Data: data})
	return nil
}

type notification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}
