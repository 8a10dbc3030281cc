package distributor

import (
	"path/filepath"
	"testing"
	"time"

	. "github.com/dimchat/assistant-go/dkd"
	"github.com/dimchat/assistant-go/internal/footprint"
	"github.com/dimchat/assistant-go/internal/messenger"
	. "github.com/dimchat/mkm-go/protocol"
	"github.com/stretchr/testify/require"
)

const (
	receiverFixture = "hulk@4YeVEN3aUnvC1DNUufCq1bs9zoBSJTzVEj"
	senderFixture   = "moky@4WDfe3zZ4T7opFSi3iDAKiuTnUHjxmXekk"
)

func newTestMessage(t *testing.T, sender, receiver string) ReliableMessage {
	t.Helper()
	msg := ReliableMessageParse(map[string]interface{}{
		"sender":    sender,
		"receiver":  receiver,
		"time":      time.Now().Unix(),
		"data":      "ZGF0YQ==",
		"signature": "c2ln",
	})
	require.NotNil(t, msg)
	return msg
}

func newTestDistributor(t *testing.T, fp *footprint.Footprint) (*Distributor, *Inbox, *messenger.Recorder) {
	t.Helper()
	inbox, err := NewInbox(filepath.Join(t.TempDir(), "inbox.db"))
	require.NoError(t, err)
	t.Cleanup(func() { inbox.Close() })
	msgr := messenger.NewRecorder()
	return New(inbox, fp, msgr, nil), inbox, msgr
}

// TestDistributorCacheVanishedReceiverStoresToInbox covers spec.md section
// 4.4: a receiver with no recorded activity is vanished, so Cache must go
// straight to the durable Inbox rather than the in-memory pending queue.
func TestDistributorCacheVanishedReceiverStoresToInbox(t *testing.T) {
	fp := footprint.New(filepath.Join(t.TempDir(), "active_users.js"), nil, nil)
	d, inbox, msgr := newTestDistributor(t, fp)

	receiver := IDParse(receiverFixture)
	require.NotNil(t, receiver)
	msg := newTestMessage(t, senderFixture, receiverFixture)

	d.Cache(msg, receiver)

	require.Empty(t, msgr.Sent, "a vanished receiver must not be forwarded immediately")
	require.Len(t, inbox.Load(receiver), 1)
}

// TestDistributorCacheLiveReceiverForwardsOnDrain covers the opposite half:
// a receiver footprint considers live gets queued in memory and is forwarded
// the next time the drain loop wakes it up, never touching the Inbox.
func TestDistributorCacheLiveReceiverForwardsOnDrain(t *testing.T) {
	fp := footprint.New(filepath.Join(t.TempDir(), "active_users.js"), nil, nil)
	receiver := IDParse(receiverFixture)
	require.NotNil(t, receiver)
	require.True(t, fp.Touch(receiver, time.Now()))

	d, inbox, msgr := newTestDistributor(t, fp)
	msg := newTestMessage(t, senderFixture, receiverFixture)

	d.Cache(msg, receiver)
	require.Empty(t, msgr.Sent, "forwarding only happens on drain, not on cache")

	d.WakeupUser(receiver)
	d.tick()

	require.Len(t, msgr.Sent, 1)
	require.Equal(t, receiver.String(), msgr.Sent[0].Receiver.String())
	require.Empty(t, inbox.Load(receiver), "pending-queue messages never touch the inbox")
}

// TestDistributorDrainForwardsAndClearsInboxEntry covers a receiver coming
// back online after being vanished: the drain loop must forward the stored
// Inbox message and then remove it, so a second drain is a no-op.
func TestDistributorDrainForwardsAndClearsInboxEntry(t *testing.T) {
	fp := footprint.New(filepath.Join(t.TempDir(), "active_users.js"), nil, nil)
	d, inbox, msgr := newTestDistributor(t, fp)

	receiver := IDParse(receiverFixture)
	require.NotNil(t, receiver)
	msg := newTestMessage(t, senderFixture, receiverFixture)

	d.Cache(msg, receiver)
	require.Len(t, inbox.Load(receiver), 1)

	require.True(t, fp.Touch(receiver, time.Now()))
	d.WakeupUser(receiver)
	d.tick()

	require.Len(t, msgr.Sent, 1)
	require.Empty(t, inbox.Load(receiver), "forwarded inbox entry must be cleared")

	msgr.Sent = nil
	d.WakeupUser(receiver)
	d.tick()
	require.Empty(t, msgr.Sent, "a drained inbox has nothing left to forward")
}
