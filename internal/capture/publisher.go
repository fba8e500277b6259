package capture

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/rEtSaMfF/ffrk-bottle/internal/adapter"
	"github.com/rEtSaMfF/ffrk-bottle/internal/archive"
	"github.com/rEtSaMfF/ffrk-bottle/internal/ingest"
	"github.com/rEtSaMfF/ffrk-bottle/internal/logger"
)

// Publisher forwards captures to the stream instead of importing them.
// It satisfies ingest.Dispatcher so a Batch can replay archived files.
type Publisher interface {
	ingest.Dispatcher
	// Close closes the NATS connection
	Close()
}

type publisher struct {
	nc     adapter.NatsConn
	js     adapter.JetStream
	prefix string
}

// NewPublisher connects to NATS and returns a publisher for the subjects under cfg.Subject
func NewPublisher(ctx context.Context, cfg Config, natsJS adapter.NatsJetStream) (Publisher, error) {
	nc, js, err := connect(ctx, cfg, natsJS)
	if err != nil {
		return nil, err
	}

	return &publisher{
		nc:     nc,
		js:     js,
		prefix: strings.TrimSuffix(strings.TrimSuffix(cfg.Subject, ">"), "."),
	}, nil
}

// Subject returns the subject a capture of action is published on
func Subject(prefix string, action string) string {
	return prefix + "." + archive.FileStem(action)
}

// Dispatch publishes the payload of in on the subject of action
func (p *publisher) Dispatch(ctx context.Context, action string, in ingest.Input) (bool, error) {
	if len(in.Payload) == 0 {
		return false, ingest.ErrNoInput
	}
	if _, ok := ingest.CaptureRoutes[action]; !ok {
		return false, fmt.Errorf("%w: %s", ingest.ErrUnknownAction, action)
	}

	subject := Subject(p.prefix, action)
	ack, err := p.js.Publish(ctx, subject, in.Payload)
	if err != nil {
		return false, fmt.Errorf("failed to publish capture: %w", err)
	}

	logger.DebugCtx(ctx, "Published capture",
		zap.String("subject", subject),
		zap.String("stream", ack.Stream),
		zap.Uint64("sequence", ack.Sequence),
	)
	return true, nil
}

// Close closes the NATS connection
func (p *publisher) Close() {
	if p.nc == nil {
		return
	}

	p.nc.Close()
}
