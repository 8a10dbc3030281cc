package distributor

import (
	"database/sql"
	"fmt"

	. "github.com/dimchat/assistant-go/protocol"
	. "github.com/dimchat/mkm-go/protocol"
	_ "modernc.org/sqlite"
)

const inboxSchema = `
CREATE TABLE IF NOT EXISTS inbox (
	receiver TEXT NOT NULL,
	signature TEXT NOT NULL,
	payload BLOB NOT NULL,
	seq INTEGER PRIMARY KEY AUTOINCREMENT,
	UNIQUE (receiver, signature)
);
`

// Inbox is the durable per-receiver queue of undelivered ReliableMessages
// (spec.md section 3/4.4), keyed by (receiver, signature) so a message
// already on file is never duplicated (at-most-one-copy invariant).
type Inbox struct {
	db *sql.DB
}

func NewInbox(path string) (*Inbox, error) {
	db, err := sql.Open("sqlite", "file:"+path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("inbox: open store: %w", err)
	}
	if _, err := db.Exec(inboxSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("inbox: apply schema: %w", err)
	}
	return &Inbox{db: db}, nil
}

func (b *Inbox) Close() error {
	return b.db.Close()
}

func signatureKey(msg ReliableMessage) string {
	sig := msg.Signature()
	if len(sig) == 0 {
		return fmt.Sprintf("sn:%d", ContentGetSN(msg.Map()))
	}
	return string(sig)
}

// Store persists msg for receiver, ignoring a duplicate (receiver,
// signature) pair.
func (b *Inbox) Store(receiver ID, msg ReliableMessage) error {
	payload, err := encode(msg)
	if err != nil {
		return err
	}
	_, err = b.db.Exec(`INSERT OR IGNORE INTO inbox (receiver, signature, payload) VALUES (?, ?, ?)`,
		receiver.String(), signatureKey(msg), payload)
	return err
}

// Load returns every message stored for receiver, ordered by arrival
// (spec.md section 6).
func (b *Inbox) Load(receiver ID) []ReliableMessage {
	rows, err := b.db.Query(`SELECT payload FROM inbox WHERE receiver = ? ORDER BY seq ASC`, receiver.String())
	if err != nil {
		return nil
	}
	defer rows.Close()
	var messages []ReliableMessage
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			continue
		}
		msg, err := decode(payload)
		if err != nil {
			continue
		}
		messages = append(messages, msg)
	}
	return messages
}

// Remove deletes one stored message for receiver once it has been forwarded
// (or relayed at-least-once; spec.md section 4.4 step 4 accepts duplicate
// delivery as idempotent at the client).
func (b *Inbox) Remove(receiver ID, msg ReliableMessage) error {
	_, err := b.db.Exec(`DELETE FROM inbox WHERE receiver = ? AND signature = ?`,
		receiver.String(), signatureKey(msg))
	return err
}
