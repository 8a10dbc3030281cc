package group

import (
	"path/filepath"
	"testing"

	. "github.com/dimchat/assistant-go/dkd"
	"github.com/dimchat/assistant-go/internal/distributor"
	"github.com/dimchat/assistant-go/internal/facebook"
	"github.com/dimchat/assistant-go/internal/keys"
	"github.com/dimchat/assistant-go/internal/messenger"
	. "github.com/dimchat/assistant-go/protocol"
	. "github.com/dimchat/mkm-go/protocol"
	"github.com/stretchr/testify/require"
)

const (
	groupFixture  = "hulk@4YeVEN3aUnvC1DNUufCq1bs9zoBSJTzVEj"
	senderFixture = "moky@4WDfe3zZ4T7opFSi3iDAKiuTnUHjxmXekk"
)

func newTestHandler(t *testing.T) (*Handler, *keys.Manager, *messenger.Recorder) {
	t.Helper()
	dir := t.TempDir()
	keyManager, err := keys.NewManager(filepath.Join(dir, "group_keys.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { keyManager.Close() })
	inbox, err := distributor.NewInbox(filepath.Join(dir, "inbox.db"))
	require.NoError(t, err)
	t.Cleanup(func() { inbox.Close() })

	msgr := messenger.NewRecorder()
	dist := distributor.New(inbox, nil, msgr, nil)
	h := New(Config{}, facebook.NewStatic(), keyManager, dist, msgr, nil)
	return h, keyManager, msgr
}

// TestHandleKeysContentUpdateSavesTable covers the update half of spec.md
// section 4.3 reached through this segment's new dispatch path: an inbound
// 'update' must merge into the key manager and return a receipt.
func TestHandleKeysContentUpdateSavesTable(t *testing.T) {
	h, keyManager, _ := newTestHandler(t)

	group := IDParse(groupFixture)
	sender := IDParse(senderFixture)
	require.NotNil(t, group)
	require.NotNil(t, sender)

	update := NewGroupKeysContent(group, sender, GroupKeysActUpdate)
	update.SetKeys("d1", map[string]string{"m1": "k1"})

	response := h.HandleKeysContent(update, sender)
	require.NotNil(t, response)

	table, ok := keyManager.Load(group, sender)
	require.True(t, ok)
	require.Equal(t, "d1", table.Digest)
	require.Equal(t, "k1", table.Keys["m1"])
}

// TestHandleKeysContentRequestRespondsWithWrappedKey covers the request
// half: a member asking for its own wrapped key gets a 'respond' back once
// the sender has already updated the table.
func TestHandleKeysContentRequestRespondsWithWrappedKey(t *testing.T) {
	h, keyManager, _ := newTestHandler(t)

	group := IDParse(groupFixture)
	keySender := IDParse(senderFixture)
	require.NotNil(t, group)
	require.NotNil(t, keySender)

	require.True(t, keyManager.Save(group, keySender, keys.Table{Digest: "d1", Keys: map[string]string{keySender.String(): "kk"}}))

	request := NewGroupKeysContent(group, keySender, GroupKeysActRequest)
	response := h.HandleKeysContent(request, keySender)

	respond, ok := response.(GroupKeysContent)
	require.True(t, ok, "a satisfiable request must get a 'respond' content back")
	require.Equal(t, GroupKeysActRespond, respond.Act())
	require.Equal(t, "kk", respond.Keys()[keySender.String()])
}

// TestHandleKeysContentUnexpectedActIgnored covers query/respond arriving
// here: they are bot-initiated only (see keys.NewQuery) and must be ignored
// rather than mishandled.
func TestHandleKeysContentUnexpectedActIgnored(t *testing.T) {
	h, _, _ := newTestHandler(t)

	group := IDParse(groupFixture)
	sender := IDParse(senderFixture)
	require.NotNil(t, group)
	require.NotNil(t, sender)

	query := NewGroupKeysContent(group, sender, GroupKeysActQuery)
	require.Nil(t, h.HandleKeysContent(query, sender))
}
