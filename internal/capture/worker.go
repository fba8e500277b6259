// Package capture moves proxy captures through NATS JetStream: a worker imports them, a publisher replays files into the stream.
package capture

import (
	"context"
	"errors"
	"fmt"

	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	"github.com/rEtSaMfF/ffrk-bottle/internal/adapter"
	"github.com/rEtSaMfF/ffrk-bottle/internal/archive"
	"github.com/rEtSaMfF/ffrk-bottle/internal/ingest"
	"github.com/rEtSaMfF/ffrk-bottle/internal/logger"
)

// Worker defines the interface for the capture worker
type Worker interface {
	// Run consumes captures until ctx is cancelled
	Run(ctx context.Context) error
	// HandleMessage imports a single capture and settles the message
	HandleMessage(ctx context.Context, msg adapter.Message)
	// Close closes the NATS connection
	Close()
}

type worker struct {
	nc         adapter.NatsConn
	js         adapter.JetStream
	dispatcher ingest.Dispatcher
	archiver   archive.Archiver
	config     Config
}

// NewWorker connects to NATS and returns a worker; archiver may be nil
func NewWorker(
	ctx context.Context,
	cfg Config,
	natsJS adapter.NatsJetStream,
	dispatcher ingest.Dispatcher,
	archiver archive.Archiver,
) (Worker, error) {
	nc, js, err := connect(ctx, cfg, natsJS)
	if err != nil {
		return nil, err
	}

	return &worker{
		nc:         nc,
		js:         js,
		dispatcher: dispatcher,
		archiver:   archiver,
		config:     cfg,
	}, nil
}

// Run consumes captures until ctx is cancelled
func (w *worker) Run(ctx context.Context) error {
	logger.InfoCtx(ctx, "Starting capture worker",
		zap.String("stream", w.config.StreamName),
		zap.String("consumer", w.config.ConsumerName),
		zap.String("subject", w.config.Subject),
	)

	consumerConfig := jetstream.ConsumerConfig{
		Durable:       w.config.ConsumerName,
		AckPolicy:     jetstream.AckExplicitPolicy,
		AckWait:       w.config.AckWaitTimeout,
		MaxDeliver:    w.config.MaxDeliver,
		FilterSubject: w.config.Subject,
	}

	consumer, err := w.js.CreateOrUpdateConsumer(ctx, w.config.StreamName, consumerConfig)
	if err != nil {
		return fmt.Errorf("failed to create/update consumer: %w", err)
	}

	consumerInfo, err := consumer.Info(ctx)
	if err != nil {
		return fmt.Errorf("failed to get consumer info: %w", err)
	}
	logger.InfoCtx(ctx, "Consumer created/retrieved", zap.String("consumer", consumerInfo.Name))

	msgChan := make(chan adapter.Message, 100)
	sub, err := consumer.Consume(func(msg adapter.Message) {
		msgChan <- msg
	})
	if err != nil {
		return fmt.Errorf("failed to create subscription: %w", err)
	}
	defer sub.Stop()

	logger.InfoCtx(ctx, "Started consuming captures")

	// Captures are applied in delivery order
	for {
		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "Shutting down capture worker")
			return ctx.Err()
		case msg := <-msgChan:
			w.HandleMessage(ctx, msg)
		}
	}
}

// HandleMessage imports a single capture and settles the message.
// Captures that can never import are terminated, transient failures are redelivered.
func (w *worker) HandleMessage(ctx context.Context, msg adapter.Message) {
	var delivered uint64
	if metadata, err := msg.Metadata(); err == nil && metadata != nil {
		delivered = metadata.NumDelivered
	}

	data := msg.Data()
	action, err := ingest.ActionOf(data)
	if err != nil {
		logger.ErrorCtx(ctx, err, zap.String("message", "Failed to read capture action"))
		w.settle(ctx, msg.Term, "terminate")
		return
	}

	logger.InfoCtx(ctx, "Received capture",
		zap.String("action", action),
		zap.Uint64("deliveryCount", delivered),
	)

	if w.archiver != nil {
		if path, err := w.archiver.Archive(action, data); err != nil {
			logger.ErrorCtx(ctx, err, zap.String("message", "Failed to archive capture"), zap.String("action", action))
		} else {
			logger.DebugCtx(ctx, "Archived capture", zap.String("path", path))
		}
	}

	ok, err := w.dispatcher.Dispatch(ctx, action, ingest.Input{Payload: data})
	if err != nil {
		if permanent(err) {
			logger.ErrorCtx(ctx, err, zap.String("message", "Dropping capture"), zap.String("action", action))
			w.settle(ctx, msg.Term, "terminate")
			return
		}
		logger.ErrorCtx(ctx, err, zap.String("message", "Failed to import capture"), zap.String("action", action))
		w.settle(ctx, msg.Nak, "NAK")
		return
	}

	logger.InfoCtx(ctx, "Capture imported", zap.String("action", action), zap.Bool("accepted", ok))
	w.settle(ctx, msg.Ack, "ACK")
}

// permanent reports whether redelivering the capture cannot change the outcome
func permanent(err error) bool {
	return errors.Is(err, ingest.ErrMalformedPayload) ||
		errors.Is(err, ingest.ErrUnknownAction) ||
		errors.Is(err, ingest.ErrNoInput)
}

func (w *worker) settle(ctx context.Context, fn func() error, name string) {
	if err := fn(); err != nil {
		logger.ErrorCtx(ctx, err, zap.String("message", "Failed to "+name+" message"))
	}
}

// Close closes the NATS connection
func (w *worker) Close() {
	if w.nc == nil {
		return
	}

	w.nc.Close()
}
