package cpu

import (
	"path/filepath"
	"testing"
	"time"

	. "github.com/dimchat/assistant-go/dkd"
	"github.com/dimchat/assistant-go/internal/distributor"
	"github.com/dimchat/assistant-go/internal/facebook"
	"github.com/dimchat/assistant-go/internal/footprint"
	"github.com/dimchat/assistant-go/internal/group"
	"github.com/dimchat/assistant-go/internal/keys"
	"github.com/dimchat/assistant-go/internal/messenger"
	"github.com/dimchat/assistant-go/internal/service"
	. "github.com/dimchat/assistant-go/protocol"
	. "github.com/dimchat/mkm-go/protocol"
	"github.com/stretchr/testify/require"
)

// groupFixture stands in for a real group ID: the key manager only ever
// calls String() on it, so an ordinary parseable address is as good as a
// genuine group address (see internal/keys/manager_test.go for the same
// reasoning). botFixture is a user address; processOne classifies it with
// IsGroup()/IsBroadcast() and, being neither, treats the secret as direct.
const (
	groupFixture = "hulk@4YeVEN3aUnvC1DNUufCq1bs9zoBSJTzVEj"
	botFixture   = "moky@4WDfe3zZ4T7opFSi3iDAKiuTnUHjxmXekk"
)

func newTestProcessor(t *testing.T) (*ForwardProcessor, *messenger.Recorder) {
	t.Helper()
	dir := t.TempDir()

	fp := footprint.New(filepath.Join(dir, "active_users.js"), nil, nil)
	keyManager, err := keys.NewManager(filepath.Join(dir, "group_keys.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { keyManager.Close() })
	inbox, err := distributor.NewInbox(filepath.Join(dir, "inbox.db"))
	require.NoError(t, err)
	t.Cleanup(func() { inbox.Close() })

	msgr := messenger.NewRecorder()
	dist := distributor.New(inbox, fp, msgr, nil)
	handler := group.New(group.Config{}, facebook.NewStatic(), keyManager, dist, msgr, nil)
	svc := service.New(8, fp, nil, nil)

	return New(handler, svc, msgr, fp, nil), msgr
}

func newDirectMessage(t *testing.T, sender, receiver string, content Content) ReliableMessage {
	t.Helper()
	info := content.GetMap(true)
	info["sender"] = sender
	info["receiver"] = receiver
	info["time"] = time.Now().Unix()
	info["data"] = "ZGF0YQ=="
	info["signature"] = "c2ln"
	msg := ReliableMessageParse(info)
	require.NotNil(t, msg)
	return msg
}

// TestProcessDispatchesGroupKeysUpdateToHandler exercises this segment's new
// DecryptContent -> dispatchCustomized -> group.Handler.HandleKeysContent
// path: an 'update' addressed directly to the bot must reach the key
// manager, not fall through to messenger.ProcessReliableMessage.
func TestProcessDispatchesGroupKeysUpdateToHandler(t *testing.T) {
	p, msgr := newTestProcessor(t)

	group := IDParse(groupFixture)
	sender := IDParse(botFixture)
	require.NotNil(t, group)
	require.NotNil(t, sender)

	update := NewGroupKeysContent(group, sender, GroupKeysActUpdate)
	update.SetKeys("d1", map[string]string{"m1": "k1"})

	msg := newDirectMessage(t, botFixture, botFixture, update)
	msgr.DecryptFunc = func(ReliableMessage) (Content, bool) { return update, true }
	processCalled := false
	msgr.ProcessFunc = func(ReliableMessage) []ReliableMessage {
		processCalled = true
		return nil
	}

	responses := p.Process(sender, NewForwardContent([]ReliableMessage{msg}))

	require.Len(t, responses, 1)
	require.Empty(t, responses[0].Secrets(), "handled content yields an empty forward slot")
	require.False(t, processCalled, "ProcessReliableMessage must not run for handled content")
	require.Len(t, msgr.Sent, 1, "HandleUpdate's text receipt must be sent back")
}

// TestProcessDispatchesUsersPostToService covers the same path for
// chat.dim.monitor/users post, landing in service.Service's queue.
func TestProcessDispatchesUsersPostToService(t *testing.T) {
	p, msgr := newTestProcessor(t)

	user := IDParse(botFixture)
	require.NotNil(t, user)

	post := NewUsersPostContent([]ID{user})
	msg := newDirectMessage(t, botFixture, botFixture, post)
	msgr.DecryptFunc = func(ReliableMessage) (Content, bool) { return post, true }

	responses := p.Process(user, NewForwardContent([]ReliableMessage{msg}))

	require.Len(t, responses, 1)
	require.Empty(t, responses[0].Secrets())
	require.Empty(t, msgr.Sent, "users/post has no direct reply")
}

// TestProcessFallsBackWhenMessengerCannotDecrypt covers the unchanged
// default path: when DecryptContent reports ok=false, the secret is handed
// to ProcessReliableMessage exactly as before this segment's change.
func TestProcessFallsBackWhenMessengerCannotDecrypt(t *testing.T) {
	p, msgr := newTestProcessor(t)

	user := IDParse(botFixture)
	require.NotNil(t, user)

	msg := newDirectMessage(t, botFixture, botFixture, NewTextContent("hi"))

	called := false
	msgr.ProcessFunc = func(ReliableMessage) []ReliableMessage {
		called = true
		return nil
	}

	p.Process(user, NewForwardContent([]ReliableMessage{msg}))

	require.True(t, called, "ProcessReliableMessage must still run when DecryptContent offers nothing")
}
