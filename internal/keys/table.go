// Package keys implements the GroupKeyManager (spec.md section 4.3): the
// durable store of per-(group, sender) WrappedKeyTables and the
// chat.dim.group/keys command handler built on top of it.
package keys

import "time"

// Table is the in-memory shape of a WrappedKeyTable (spec.md section 3):
// a digest identifying the key generation, the time it was stamped, and the
// per-member wrapped-key ciphertexts. Digest and Time are carried alongside
// Keys rather than inside it, matching the "reserved entries" wording in the
// spec but keeping Go code from treating them as members.
type Table struct {
	Digest string
	Time   time.Time
	Keys   map[string]string // member ID (string) -> wrapped key ciphertext
}

func (t Table) clone() Table {
	keys := make(map[string]string, len(t.Keys))
	for k, v := range t.Keys {
		keys[k] = v
	}
	return Table{Digest: t.Digest, Time: t.Time, Keys: keys}
}

// merge applies the section 4.3 merge rule: old ∪ incoming when digests
// match (incoming wins on conflict), full replacement otherwise. changed
// reports whether anything about the stored table actually moved.
func merge(old Table, hasOld bool, incoming Table) (result Table, changed bool) {
	if !hasOld {
		return incoming.clone(), true
	}
	if old.Digest != "" && old.Digest == incoming.Digest {
		merged := old.clone()
		for member, wrapped := range incoming.Keys {
			if existing, ok := merged.Keys[member]; !ok || existing != wrapped {
				merged.Keys[member] = wrapped
				changed = true
			}
		}
		if incoming.Time.After(merged.Time) {
			merged.Time = incoming.Time
		}
		if !changed {
			return old, false
		}
		return merged, true
	}
	return incoming.clone(), true
}
