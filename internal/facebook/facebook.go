// Package facebook narrows the identity/public-key directory (the "Facebook"
// in dimchat's terminology) down to the two capabilities the group-message
// engine actually needs: group membership and identity-document timestamps.
// Everything else (meta, private keys, contacts) stays out of scope per
// spec.md section 1.
package facebook

import (
	"time"

	. "github.com/dimchat/mkm-go/protocol"
)

// Document is the narrow slice of an identity document this package cares
// about: its own update time, used by footprint's reconciliation pass.
type Document struct {
	ID   ID
	Time time.Time
}

// Facebook is the capability the engine depends on; it never holds a
// reference back to Messenger or Distributor (spec.md section 9's cyclic
// reference note).
type Facebook interface {
	// Members lists the current membership of a group, or nil if the group
	// is unknown.
	Members(group ID) []ID

	// Document returns the freshest identity document known for id, if any.
	Document(id ID) (Document, bool)
}
