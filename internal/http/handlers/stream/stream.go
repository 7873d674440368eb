package stream

import (
	"net/http"

	e "eventcal/internal/core/domain/errors"
	"eventcal/internal/core/domain/logging"

	"github.com/r3labs/sse/v2"
)

// Handler subscribes the client to a fixed server-sent events stream. The
// stream is shared by all subscribers and outlives any single connection,
// so it is created once and never removed on disconnect.
type Handler struct {
	log       logging.Logger
	sseServer *sse.Server
	streamID  string
}

func New(
	log logging.Logger,
	sseServer *sse.Server,
	streamID string,
) *Handler {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if sseServer == nil {
		panic(e.NewNilArgumentError("sseServer"))
	}
	if streamID == "" {
		panic("streamID must not be empty")
	}
	sseServer.CreateStream(streamID)
	return &Handler{log: log, sseServer: sseServer, streamID: streamID}
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	query.Set("stream", h.streamID)
	r.URL.RawQuery = query.Encode()

	go func() {
		// Received browser disconnection
		<-r.Context().Done()
		h.log.Info(
			r.Context(),
			"Unsubscribed from stream.",
			logging.Entry("streamID", h.streamID),
		)
	}()

	h.log.Info(
		r.Context(),
		"Subscribed to stream.",
		logging.Entry("streamID", h.streamID),
	)
	h.sseServer.ServeHTTP(rw, r)
}
