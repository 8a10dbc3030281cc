// Package messenger narrows the transport/packer ("Messenger" in dimchat's
// terminology) down to the calls the engine makes outward and the one call
// it makes inward (DecryptContent). Encryption, session management and the
// wire transport itself stay out of scope per spec.md section 1.
package messenger

import (
	. "github.com/dimchat/assistant-go/protocol"
	. "github.com/dimchat/mkm-go/protocol"
)

// Messenger is assumed thread-safe for SendContent/SendReliableMessage
// (spec.md section 5). Priority follows the convention used by the key
// command handlers: 0 is normal, 1 is the "respond promptly" priority used
// for permission-denied receipts and KeyQuery.
type Messenger interface {
	// SendContent packs and delivers content to receiver. group is the
	// scoping group for group-addressed receipts, or nil for a direct
	// message.
	SendContent(receiver ID, group ID, content Content, priority int) bool

	// SendReliableMessage relays an already-packed secret verbatim.
	SendReliableMessage(msg ReliableMessage, priority int) bool

	// ProcessReliableMessage hands a secret that is not part of the
	// group-message fan-out path (direct messages, group-command secrets)
	// to the outer message-processing pipeline, returning zero or more
	// response secrets to relay back.
	ProcessReliableMessage(msg ReliableMessage) []ReliableMessage

	// DecryptContent verifies and decrypts a secret addressed directly to
	// this bot (not a group-fanout message), returning its content. ok is
	// false when the secret fails verification/decryption or the
	// implementation has nothing to offer beyond ProcessReliableMessage.
	// The cryptography itself stays out of scope here (spec.md section 1);
	// this call exists so chat.dim.group/keys and chat.dim.monitor/users
	// content addressed to the bot can reach internal/cpu's domain
	// dispatch instead of being opaquely relayed.
	DecryptContent(msg ReliableMessage) (content Content, ok bool)
}
