package keys

import (
	"path/filepath"
	"testing"
	"time"

	. "github.com/dimchat/mkm-go/protocol"
	"github.com/stretchr/testify/require"
)

// groupFixture/senderFixture are plain fixture addresses used
// as opaque string keys here — Manager never inspects IsGroup()/
// IsBroadcast(), it only ever calls String() on whatever ID it is given.
const (
	groupFixture  = "hulk@4YeVEN3aUnvC1DNUufCq1bs9zoBSJTzVEj"
	senderFixture = "moky@4WDfe3zZ4T7opFSi3iDAKiuTnUHjxmXekk"
)

func newManager(t *testing.T) *Manager {
	t.Helper()
	path := filepath.Join(t.TempDir(), "group_keys.db")
	m, err := NewManager(path, nil)
	require.NoError(t, err)
	t.Cleanup(func() { m.Close() })
	return m
}

// TestManagerSaveLoadRoundTrip covers spec.md section 8 invariant 2 against
// the real sqlite-backed storage (table_test.go already covers the pure
// merge rule the same invariant names).
func TestManagerSaveLoadRoundTrip(t *testing.T) {
	m := newManager(t)
	group := IDParse(groupFixture)
	sender := IDParse(senderFixture)
	require.NotNil(t, group)
	require.NotNil(t, sender)

	_, ok := m.Load(group, sender)
	require.False(t, ok, "no table saved yet")

	changed := m.Save(group, sender, Table{
		Digest: "d1",
		Time:   time.Now(),
		Keys:   map[string]string{"m1": "k1", "m2": "k2"},
	})
	require.True(t, changed)

	table, ok := m.Load(group, sender)
	require.True(t, ok)
	require.Equal(t, "d1", table.Digest)
	require.Equal(t, map[string]string{"m1": "k1", "m2": "k2"}, table.Keys)

	// Get is a thin Load+map-lookup wrapper; exercise it against a member
	// keyed by the sender fixture's own address, since that is the only
	// other confidently-parseable ID fixture available here.
	wrapped, ok := m.Get(group, sender, sender)
	require.False(t, ok, "sender's own address was never stored as a member key")
	require.Empty(t, wrapped)
}

// TestManagerSaveSameDigestUnion covers invariant 2's union-on-conflict
// rule end to end through the sqlite write path.
func TestManagerSaveSameDigestUnion(t *testing.T) {
	m := newManager(t)
	group := IDParse(groupFixture)
	sender := IDParse(senderFixture)
	require.NotNil(t, group)
	require.NotNil(t, sender)

	require.True(t, m.Save(group, sender, Table{Digest: "d1", Time: time.Now(), Keys: map[string]string{"m1": "k1"}}))
	require.True(t, m.Save(group, sender, Table{Digest: "d1", Time: time.Now(), Keys: map[string]string{"m1": "k1-new", "m2": "k2"}}))

	table, ok := m.Load(group, sender)
	require.True(t, ok)
	require.Equal(t, "k1-new", table.Keys["m1"])
	require.Equal(t, "k2", table.Keys["m2"])
}

// TestManagerSaveDigestRotationReplaces covers invariant 3: a differing
// digest replaces the stored table, dropping members not present in the
// new one.
func TestManagerSaveDigestRotationReplaces(t *testing.T) {
	m := newManager(t)
	group := IDParse(groupFixture)
	sender := IDParse(senderFixture)
	require.NotNil(t, group)
	require.NotNil(t, sender)

	require.True(t, m.Save(group, sender, Table{Digest: "d1", Time: time.Now(), Keys: map[string]string{"m1": "k1", "m2": "k2"}}))
	require.True(t, m.Save(group, sender, Table{Digest: "d2", Time: time.Now(), Keys: map[string]string{"m1": "k1-rotated"}}))

	table, ok := m.Load(group, sender)
	require.True(t, ok)
	require.Equal(t, "d2", table.Digest)
	require.Equal(t, map[string]string{"m1": "k1-rotated"}, table.Keys)
}

func TestManagerSaveNoChangeReturnsFalse(t *testing.T) {
	m := newManager(t)
	group := IDParse(groupFixture)
	sender := IDParse(senderFixture)
	require.NotNil(t, group)
	require.NotNil(t, sender)

	require.True(t, m.Save(group, sender, Table{Digest: "d1", Time: time.Now(), Keys: map[string]string{"m1": "k1"}}))
	require.False(t, m.Save(group, sender, Table{Digest: "d1", Keys: map[string]string{}}))
}
