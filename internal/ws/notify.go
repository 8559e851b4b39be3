package ws

import (
	"context"
	"encoding/json"

	"portal-api/internal/domain/lca"
)

// PublishPostingEvent broadcasts evt to every connected subscriber. It never
// blocks; a full broadcast buffer drops the event.
func (h *Hub) PublishPostingEvent(_ context.Context, evt lca.Event) error {
	if h == nil {
		return nil
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	h.Broadcast(b)
	return nil
}
