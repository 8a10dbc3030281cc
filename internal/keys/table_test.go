package keys

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMergeNoExistingTable covers spec.md section 8 invariant: save() with
// no prior table stores the incoming table as-is.
func TestMergeNoExistingTable(t *testing.T) {
	incoming := Table{Digest: "d1", Time: time.Now(), Keys: map[string]string{"B": "kB", "C": "kC"}}

	result, changed := merge(Table{}, false, incoming)

	require.True(t, changed)
	assert.Equal(t, "d1", result.Digest)
	assert.Equal(t, map[string]string{"B": "kB", "C": "kC"}, result.Keys)
}

// TestMergeSameDigestUnion covers invariant 2: save(K1); save(K2) with
// K1.digest == K2.digest yields K1 ∪ K2, K2 winning on conflict.
func TestMergeSameDigestUnion(t *testing.T) {
	old := Table{Digest: "d2", Time: time.Now(), Keys: map[string]string{"B": "kB"}}
	incoming := Table{Digest: "d2", Time: time.Now(), Keys: map[string]string{"B": "kB-new", "C": "kC"}}

	result, changed := merge(old, true, incoming)

	require.True(t, changed)
	assert.Equal(t, "d2", result.Digest)
	assert.Equal(t, "kB-new", result.Keys["B"])
	assert.Equal(t, "kC", result.Keys["C"])
}

// TestMergeSameDigestNoChange covers section 4.3: "Return true iff at least
// one member entry was added/changed; if none changed ... return false
// without writing."
func TestMergeSameDigestNoChange(t *testing.T) {
	old := Table{Digest: "d2", Time: time.Now(), Keys: map[string]string{"B": "kB"}}
	incoming := Table{Digest: "d2", Keys: map[string]string{}}

	_, changed := merge(old, true, incoming)

	assert.False(t, changed)
}

// TestMergeDifferentDigestReplaces covers invariant 3: differing digests
// replace the stored table entirely.
func TestMergeDifferentDigestReplaces(t *testing.T) {
	old := Table{Digest: "d2", Keys: map[string]string{"B": "kB", "C": "kC"}}
	incoming := Table{Digest: "d3", Keys: map[string]string{"B": "kB-rotated"}}

	result, changed := merge(old, true, incoming)

	require.True(t, changed)
	assert.Equal(t, "d3", result.Digest)
	assert.Equal(t, map[string]string{"B": "kB-rotated"}, result.Keys)
	_, stillThere := result.Keys["C"]
	assert.False(t, stillThere, "C's key must not survive a digest rotation")
}
