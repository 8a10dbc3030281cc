package service

import (
	"path/filepath"
	"testing"
	"time"

	. "github.com/dimchat/assistant-go/dkd"
	"github.com/dimchat/assistant-go/internal/footprint"
	. "github.com/dimchat/mkm-go/protocol"
	"github.com/stretchr/testify/require"
)

const (
	testUserA = "hulk@4YeVEN3aUnvC1DNUufCq1bs9zoBSJTzVEj"
	testUserB = "moky@4WDfe3zZ4T7opFSi3iDAKiuTnUHjxmXekk"
)

func newTestFootprint(t *testing.T) *footprint.Footprint {
	t.Helper()
	path := filepath.Join(t.TempDir(), "active_users.js")
	return footprint.New(path, nil, nil)
}

// TestUsersPostTouchesAndInvokesHookOnce covers spec.md section 8 invariant
// 7: a vanished-then-present user invokes the new-user hook exactly once
// per vanish -> active edge within one tick.
func TestUsersPostTouchesAndInvokesHookOnce(t *testing.T) {
	fp := newTestFootprint(t)
	userA := IDParse(testUserA)
	userB := IDParse(testUserB)
	require.NotNil(t, userA)
	require.NotNil(t, userB)

	// userB was recently active (not vanished); userA has never been seen
	// (vanished by definition) so its edge should fire the hook.
	fp.Touch(userB, time.Now())

	var invited []string
	svc := New(8, fp, func(user ID) { invited = append(invited, user.String()) }, nil)

	content := NewUsersPostContent([]ID{userA, userB})
	svc.handleUsersPost(content)

	require.Equal(t, []string{userA.String()}, invited)
	require.False(t, fp.IsVanished(userA))
	require.False(t, fp.IsVanished(userB))
}

func TestRequestIdentifierWithoutGroupOrSender(t *testing.T) {
	sender := IDParse(testUserA)
	require.NotNil(t, sender)

	content := NewTextContent("hello")
	head := NewMessageEnvelope(map[string]interface{}{}, nil, nil, time.Time{})
	req := Request{Head: head, Body: content}
	// No envelope sender set and no group on content: Identifier degrades
	// gracefully to whatever head.Sender() returns (nil here), matching
	// "group messages respond to the group, direct messages to the sender".
	require.Nil(t, req.Identifier())
}
