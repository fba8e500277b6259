package capture_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rEtSaMfF/ffrk-bottle/internal/capture"
	"github.com/rEtSaMfF/ffrk-bottle/internal/ingest"
)

func TestSubject(t *testing.T) {
	assert.Equal(t, "captures.dff_world_dungeons", capture.Subject("captures", "/dff/world/dungeons"))
	assert.Equal(t, "captures.win_battle", capture.Subject("captures", "win_battle"))
}

func TestPublisher_Dispatch(t *testing.T) {
	ctx := context.Background()
	const party = `{"path": "/dff/party/list", "equipments": []}`

	newPublisher := func(t *testing.T) (capture.Publisher, *testWorkerMocks) {
		mocks := setupTestWorker(t)
		mocks.natsJS.
			EXPECT().
			Connect("nats://localhost:4222", gomock.Any()).
			Return(mocks.natsConn, mocks.jetStream, nil)

		p, err := capture.NewPublisher(ctx, testConfig(), mocks.natsJS)
		require.NoError(t, err)
		return p, mocks
	}

	t.Run("publishes on the action subject", func(t *testing.T) {
		p, mocks := newPublisher(t)
		mocks.jetStream.
			EXPECT().
			Publish(gomock.Any(), "captures.dff_party_list", []byte(party)).
			Return(&jetstream.PubAck{Stream: "FFRK_CAPTURES", Sequence: 7}, nil)

		ok, err := p.Dispatch(ctx, "/dff/party/list", ingest.Input{Payload: []byte(party)})
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("unroutable action is not published", func(t *testing.T) {
		p, _ := newPublisher(t)

		ok, err := p.Dispatch(ctx, "/dff/gacha/show", ingest.Input{Payload: []byte(`{}`)})
		assert.False(t, ok)
		assert.ErrorIs(t, err, ingest.ErrUnknownAction)
	})

	t.Run("empty payload", func(t *testing.T) {
		p, _ := newPublisher(t)

		ok, err := p.Dispatch(ctx, "/dff/party/list", ingest.Input{FilePath: "party.json"})
		assert.False(t, ok)
		assert.ErrorIs(t, err, ingest.ErrNoInput)
	})

	t.Run("publish failure", func(t *testing.T) {
		p, mocks := newPublisher(t)
		mocks.jetStream.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, assert.AnError)

		ok, err := p.Dispatch(ctx, "/dff/party/list", ingest.Input{Payload: []byte(party)})
		assert.False(t, ok)
		assert.ErrorIs(t, err, assert.AnError)
	})

	t.Run("close", func(t *testing.T) {
		p, mocks := newPublisher(t)
		mocks.natsConn.EXPECT().Close()
		p.Close()
	})
}
