package footprint

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dimchat/assistant-go/internal/facebook"
	. "github.com/dimchat/mkm-go/protocol"
)

const testUser = "hulk@4YeVEN3aUnvC1DNUufCq1bs9zoBSJTzVEj"

func newFootprint(t *testing.T) *Footprint {
	t.Helper()
	path := filepath.Join(t.TempDir(), "active_users.js")
	return New(path, nil, nil)
}

// TestTouchMonotone covers spec.md section 8 invariant 5:
// touch(id,t); t'<=t; touch(id,t') => lastTime(id)=t.
func TestTouchMonotone(t *testing.T) {
	fp := newFootprint(t)
	id := IDParse(testUser)
	require.NotNil(t, id)

	later := time.Now().Add(-1 * time.Hour)
	earlier := later.Add(-1 * time.Hour)

	require.True(t, fp.Touch(id, later))
	require.True(t, fp.Touch(id, earlier))

	require.True(t, fp.entries[id.String()].lastTime.Equal(later), "an older touch must not move lastTime back")
	require.False(t, fp.IsVanished(id), "1h-old activity must not be vanished (EXPIRES=10h)")
}

func TestIsVanishedAfterExpires(t *testing.T) {
	fp := newFootprint(t)
	id := IDParse(testUser)
	require.NotNil(t, id)

	longAgo := time.Now().Add(-(Expires + time.Hour))
	require.True(t, fp.Touch(id, longAgo))

	require.True(t, fp.IsVanished(id))
}

func TestIsVanishedUnknownUser(t *testing.T) {
	fp := newFootprint(t)
	id := IDParse(testUser)
	require.NotNil(t, id)

	require.True(t, fp.IsVanished(id), "a user never touched has no entry and counts as vanished")
}

func TestFlushWritesAndReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "active_users.js")
	fp := New(path, nil, nil)

	id := IDParse(testUser)
	require.NotNil(t, id)
	fp.Touch(id, time.Now())
	fp.Flush()

	reloaded := New(path, nil, nil)
	require.False(t, reloaded.IsVanished(id))
}

// TestFlushDropsStaleEntryWithoutReconciliation covers the monthly prune in
// flushLocked when there is no Facebook to reconcile against: an entry whose
// last activity is older than Monthly is dropped on flush.
func TestFlushDropsStaleEntryWithoutReconciliation(t *testing.T) {
	dir := t.TempDir()
	fp := New(filepath.Join(dir, "active_users.js"), nil, nil)

	id := IDParse(testUser)
	require.NotNil(t, id)
	fp.Touch(id, time.Now().Add(-(Monthly + time.Hour)))
	fp.Flush()

	require.Empty(t, fp.ActiveUsers())
}

// TestFlushReconcilesAgainstFacebookDocumentTime covers the other half of the
// same rule: a Facebook document newer than the tracked last-activity time
// pulls the entry forward, so it survives the monthly prune (spec.md section
// 4.5's "secondary Facebook-document-time reconciliation pass").
func TestFlushReconcilesAgainstFacebookDocumentTime(t *testing.T) {
	dir := t.TempDir()
	id := IDParse(testUser)
	require.NotNil(t, id)

	fb := facebook.NewStatic()
	fb.SetDocument(id, time.Now())

	fp := New(filepath.Join(dir, "active_users.js"), fb, nil)
	fp.Touch(id, time.Now().Add(-(Monthly + time.Hour)))
	fp.Flush()

	active := fp.ActiveUsers()
	require.Len(t, active, 1)
	require.Equal(t, id.String(), active[0].String())
}
