package capture_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rEtSaMfF/ffrk-bottle/internal/adapter"
	"github.com/rEtSaMfF/ffrk-bottle/internal/archive"
	"github.com/rEtSaMfF/ffrk-bottle/internal/capture"
	"github.com/rEtSaMfF/ffrk-bottle/internal/ingest"
	mockspkg "github.com/rEtSaMfF/ffrk-bottle/internal/mocks"
)

// testWorkerMocks contains all the mocks needed for testing the worker
type testWorkerMocks struct {
	ctrl       *gomock.Controller
	natsJS     *mockspkg.MockNatsJetStream
	natsConn   *mockspkg.MockNatsConn
	jetStream  *mockspkg.MockJetStream
	dispatcher *mockspkg.MockDispatcher
	archiver   *mockspkg.MockArchiver
}

func setupTestWorker(t *testing.T) *testWorkerMocks {
	ctrl := gomock.NewController(t)

	return &testWorkerMocks{
		ctrl:       ctrl,
		natsJS:     mockspkg.NewMockNatsJetStream(ctrl),
		natsConn:   mockspkg.NewMockNatsConn(ctrl),
		jetStream:  mockspkg.NewMockJetStream(ctrl),
		dispatcher: mockspkg.NewMockDispatcher(ctrl),
		archiver:   mockspkg.NewMockArchiver(ctrl),
	}
}

func testConfig() capture.Config {
	return capture.Config{
		URL:            "nats://localhost:4222",
		StreamName:     "FFRK_CAPTURES",
		ConsumerName:   "ingest-worker",
		Subject:        "captures.>",
		MaxReconnects:  10,
		ReconnectWait:  time.Second,
		ConnectionName: "test-worker",
		AckWaitTimeout: 30 * time.Second,
		MaxDeliver:     5,
	}
}

// newConnectedWorker builds a worker whose NATS connection succeeds on the first attempt
func newConnectedWorker(t *testing.T, mocks *testWorkerMocks, archiver bool) capture.Worker {
	mocks.natsJS.
		EXPECT().
		Connect("nats://localhost:4222", gomock.Any()).
		Return(mocks.natsConn, mocks.jetStream, nil)

	var arch archive.Archiver
	if archiver {
		arch = mocks.archiver
	}

	w, err := capture.NewWorker(context.Background(), testConfig(), mocks.natsJS, mocks.dispatcher, arch)
	require.NoError(t, err)
	return w
}

// newMessage returns a capture message carrying data
func newMessage(ctrl *gomock.Controller, data string) *mockspkg.MockJetStreamMessage {
	msg := mockspkg.NewMockJetStreamMessage(ctrl)
	msg.EXPECT().Data().Return([]byte(data)).AnyTimes()
	msg.EXPECT().Metadata().Return(&jetstream.MsgMetadata{NumDelivered: 1}, nil).AnyTimes()
	return msg
}

func TestNewWorker(t *testing.T) {
	t.Run("connects", func(t *testing.T) {
		mocks := setupTestWorker(t)
		w := newConnectedWorker(t, mocks, false)
		assert.NotNil(t, w)
	})

	t.Run("connect error", func(t *testing.T) {
		mocks := setupTestWorker(t)
		mocks.natsJS.
			EXPECT().
			Connect(gomock.Any(), gomock.Any()).
			Return(nil, nil, assert.AnError).
			Times(1)

		w, err := capture.NewWorker(context.Background(), testConfig(), mocks.natsJS, mocks.dispatcher, nil)
		assert.Error(t, err)
		assert.Nil(t, w)
		assert.Contains(t, err.Error(), "failed to connect to NATS")
	})
}

func TestWorker_HandleMessage(t *testing.T) {
	const battles = `{"path": "/dff/world/battles", "battles": []}`

	tests := []struct {
		name    string
		data    string
		archive bool
		setup   func(m *testWorkerMocks, msg *mockspkg.MockJetStreamMessage)
	}{
		{
			name:    "imported capture is archived and acknowledged",
			data:    battles,
			archive: true,
			setup: func(m *testWorkerMocks, msg *mockspkg.MockJetStreamMessage) {
				gomock.InOrder(
					m.archiver.EXPECT().Archive("/dff/world/battles", []byte(battles)).Return("archive/dff_world_battles.json", nil),
					m.dispatcher.EXPECT().
						Dispatch(gomock.Any(), "/dff/world/battles", ingest.Input{Payload: []byte(battles)}).
						Return(true, nil),
					msg.EXPECT().Ack().Return(nil),
				)
			},
		},
		{
			name: "rejected capture is acknowledged",
			data: battles,
			setup: func(m *testWorkerMocks, msg *mockspkg.MockJetStreamMessage) {
				m.dispatcher.EXPECT().Dispatch(gomock.Any(), "/dff/world/battles", gomock.Any()).Return(false, nil)
				msg.EXPECT().Ack().Return(nil)
			},
		},
		{
			name: "unknown action is terminated",
			data: `{"path": "/dff/gacha/show"}`,
			setup: func(m *testWorkerMocks, msg *mockspkg.MockJetStreamMessage) {
				m.dispatcher.EXPECT().
					Dispatch(gomock.Any(), "/dff/gacha/show", gomock.Any()).
					Return(false, fmt.Errorf("%w: /dff/gacha/show", ingest.ErrUnknownAction))
				msg.EXPECT().Term().Return(nil)
			},
		},
		{
			name: "payload missing a required key is terminated",
			data: battles,
			setup: func(m *testWorkerMocks, msg *mockspkg.MockJetStreamMessage) {
				m.dispatcher.EXPECT().
					Dispatch(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(false, fmt.Errorf("failed to run battles: %w", ingest.ErrMalformedPayload))
				msg.EXPECT().Term().Return(nil)
			},
		},
		{
			name: "store failure is redelivered",
			data: battles,
			setup: func(m *testWorkerMocks, msg *mockspkg.MockJetStreamMessage) {
				m.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, errors.New("database is locked"))
				msg.EXPECT().Nak().Return(nil)
			},
		},
		{
			name:    "invalid JSON is terminated without import",
			data:    `{"path": `,
			archive: true,
			setup: func(m *testWorkerMocks, msg *mockspkg.MockJetStreamMessage) {
				msg.EXPECT().Term().Return(nil)
			},
		},
		{
			name:    "archive failure does not block the import",
			data:    battles,
			archive: true,
			setup: func(m *testWorkerMocks, msg *mockspkg.MockJetStreamMessage) {
				m.archiver.EXPECT().Archive(gomock.Any(), gomock.Any()).Return("", assert.AnError)
				m.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
				msg.EXPECT().Ack().Return(nil)
			},
		},
		{
			name: "settle failure is only logged",
			data: battles,
			setup: func(m *testWorkerMocks, msg *mockspkg.MockJetStreamMessage) {
				m.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
				msg.EXPECT().Ack().Return(assert.AnError)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mocks := setupTestWorker(t)
			w := newConnectedWorker(t, mocks, tt.archive)

			msg := newMessage(mocks.ctrl, tt.data)
			tt.setup(mocks, msg)

			w.HandleMessage(context.Background(), msg)
		})
	}
}

func TestWorker_Run(t *testing.T) {
	t.Run("consumes until cancelled", func(t *testing.T) {
		mocks := setupTestWorker(t)
		w := newConnectedWorker(t, mocks, false)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		consumer := mockspkg.NewMockNatsConsumer(mocks.ctrl)
		sub := mockspkg.NewMockConsumeContext(mocks.ctrl)
		msg := newMessage(mocks.ctrl, `{"action": "win_battle", "battle_id": 507006}`)

		mocks.jetStream.
			EXPECT().
			CreateOrUpdateConsumer(gomock.Any(), "FFRK_CAPTURES", jetstream.ConsumerConfig{
				Durable:       "ingest-worker",
				AckPolicy:     jetstream.AckExplicitPolicy,
				AckWait:       30 * time.Second,
				MaxDeliver:    5,
				FilterSubject: "captures.>",
			}).
			Return(consumer, nil)
		consumer.EXPECT().Info(gomock.Any()).Return(&jetstream.ConsumerInfo{Name: "ingest-worker"}, nil)
		consumer.EXPECT().
			Consume(gomock.Any()).
			DoAndReturn(func(handler adapter.MessageHandler, _ ...jetstream.PullConsumeOpt) (adapter.ConsumeContext, error) {
				handler(msg)
				return sub, nil
			})
		mocks.dispatcher.EXPECT().Dispatch(gomock.Any(), "win_battle", gomock.Any()).Return(true, nil)
		msg.EXPECT().Ack().DoAndReturn(func() error {
			cancel()
			return nil
		})
		sub.EXPECT().Stop()

		err := w.Run(ctx)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("create consumer error", func(t *testing.T) {
		mocks := setupTestWorker(t)
		w := newConnectedWorker(t, mocks, false)

		mocks.jetStream.
			EXPECT().
			CreateOrUpdateConsumer(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, assert.AnError)

		err := w.Run(context.Background())
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create/update consumer")
	})

	t.Run("consume error", func(t *testing.T) {
		mocks := setupTestWorker(t)
		w := newConnectedWorker(t, mocks, false)

		consumer := mockspkg.NewMockNatsConsumer(mocks.ctrl)
		mocks.jetStream.EXPECT().CreateOrUpdateConsumer(gomock.Any(), gomock.Any(), gomock.Any()).Return(consumer, nil)
		consumer.EXPECT().Info(gomock.Any()).Return(&jetstream.ConsumerInfo{Name: "ingest-worker"}, nil)
		consumer.EXPECT().Consume(gomock.Any()).Return(nil, assert.AnError)

		err := w.Run(context.Background())
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create subscription")
	})
}

func TestWorker_Close(t *testing.T) {
	mocks := setupTestWorker(t)
	w := newConnectedWorker(t, mocks, false)

	mocks.natsConn.EXPECT().Close()
	w.Close()
}
