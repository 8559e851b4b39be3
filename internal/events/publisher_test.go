package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"portal-api/internal/domain/lca"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeConn struct {
	subjects []string
	payloads [][]byte
	err      error
	closed   bool
}

func (c *fakeConn) Publish(subj string, data []byte) error {
	if c.err != nil {
		return c.err
	}
	c.subjects = append(c.subjects, subj)
	c.payloads = append(c.payloads, data)
	return nil
}

func (c *fakeConn) Close() { c.closed = true }

func sampleEvent(t lca.EventType) lca.Event {
	p := lca.FallbackPostings()[0]
	return lca.NewEvent(t, p, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
}

func TestNATSPublisher_PublishesToSubjectByType(t *testing.T) {
	conn := &fakeConn{}
	p := &NATSPublisher{conn: conn, logger: zap.NewNop()}

	require.NoError(t, p.PublishPostingEvent(context.Background(), sampleEvent(lca.EventPostingCreated)))
	require.NoError(t, p.PublishPostingEvent(context.Background(), sampleEvent(lca.EventPostingStatusChanged)))

	assert.Equal(t, []string{SubjectPostingCreated, SubjectPostingStatusChanged}, conn.subjects)

	var got lca.Event
	require.NoError(t, json.Unmarshal(conn.payloads[0], &got))
	assert.Equal(t, "I-200-25015-123456", got.LCANumber)
	assert.Equal(t, "2025-06-01T00:00:00Z", got.Timestamp)

	p.Close()
	assert.True(t, conn.closed)
}

func TestNATSPublisher_NilIsNoop(t *testing.T) {
	var p *NATSPublisher
	assert.NoError(t, p.PublishPostingEvent(context.Background(), sampleEvent(lca.EventPostingCreated)))
	p.Close()
}

type recordingSink struct {
	n   int
	err error
}

func (s *recordingSink) PublishPostingEvent(context.Context, lca.Event) error {
	s.n++
	return s.err
}

func TestFanout_DeliversToAllAndJoinsErrors(t *testing.T) {
	boom := errors.New("boom")
	a := &recordingSink{}
	b := &recordingSink{err: boom}
	c := &recordingSink{}

	err := Fanout{a, nil, b, c}.PublishPostingEvent(context.Background(), sampleEvent(lca.EventPostingCreated))
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, a.n)
	assert.Equal(t, 1, b.n)
	assert.Equal(t, 1, c.n)
}
