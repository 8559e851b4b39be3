package events

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"portal-api/internal/config"
	"portal-api/internal/domain/lca"
	applog "portal-api/internal/logger"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"
)

const (
	SubjectPostingCreated       = "lca.postings.created"
	SubjectPostingStatusChanged = "lca.postings.status_changed"
)

// Sink receives posting events. Implementations must not block the caller for
// long; delivery is best effort.
type Sink interface {
	PublishPostingEvent(ctx context.Context, evt lca.Event) error
}

type natsConn interface {
	Publish(subj string, data []byte) error
	Close()
}

type NATSPublisher struct {
	conn   natsConn
	logger *zap.Logger
}

func NewNATSPublisher(cfg config.NATSConfig, logger *zap.Logger) (*NATSPublisher, error) {
	logger = applog.OrNop(logger)
	opts := []nats.Option{
		nats.Name("portal-api"),
		nats.Timeout(cfg.ConnTimeout),
		nats.ReconnectWait(time.Second),
		nats.MaxReconnects(-1),
		nats.RetryOnFailedConnect(true),
	}
	conn, err := nats.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, err
	}
	return &NATSPublisher{conn: conn, logger: logger}, nil
}

func SubjectFor(t lca.EventType) string {
	switch t {
	case lca.EventPostingStatusChanged:
		return SubjectPostingStatusChanged
	default:
		return SubjectPostingCreated
	}
}

func (p *NATSPublisher) PublishPostingEvent(ctx context.Context, evt lca.Event) error {
	if p == nil || p.conn == nil {
		return nil
	}
	data, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	subject := SubjectFor(evt.Type)
	if err := p.conn.Publish(subject, data); err != nil {
		p.logger.Error("[Events] publish failed",
			zap.String("subject", subject),
			zap.String("posting_id", evt.PostingID),
			zap.Error(err))
		return err
	}
	p.logger.Debug("[Events] published",
		zap.String("subject", subject),
		zap.String("posting_id", evt.PostingID))
	return nil
}

func (p *NATSPublisher) Close() {
	if p != nil && p.conn != nil {
		p.conn.Close()
	}
}

// Fanout delivers each event to every sink and joins their errors.
type Fanout []Sink

func (f Fanout) PublishPostingEvent(ctx context.Context, evt lca.Event) error {
	var errs []error
	for _, s := range f {
		if s == nil {
			continue
		}
		if err := s.PublishPostingEvent(ctx, evt); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
