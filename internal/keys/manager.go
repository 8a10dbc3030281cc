package keys

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	. "github.com/dimchat/mkm-go/protocol"
	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS group_keys_meta (
	group_id TEXT NOT NULL,
	sender_id TEXT NOT NULL,
	digest TEXT NOT NULL DEFAULT '',
	stamp INTEGER NOT NULL DEFAULT 0,
	PRIMARY KEY (group_id, sender_id)
);
CREATE TABLE IF NOT EXISTS group_keys (
	group_id TEXT NOT NULL,
	sender_id TEXT NOT NULL,
	member_id TEXT NOT NULL,
	wrapped_key TEXT NOT NULL,
	PRIMARY KEY (group_id, sender_id, member_id)
);
`

// Manager is the GroupKeyManager (spec.md section 4.3). Writes are
// serialized per (group, sender) pair via a single mutex — the pair space
// is small and contention is rare enough that one lock for the whole
// manager is simpler than per-pair striping, matching the teacher's
// preference for one guarding mutex per shared resource (spec.md section 5).
type Manager struct {
	db     *sql.DB
	mutex  sync.Mutex
	logger logrus.FieldLogger
}

func NewManager(path string, logger logrus.FieldLogger) (*Manager, error) {
	db, err := sql.Open("sqlite", "file:"+path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("keys: open store: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("keys: apply schema: %w", err)
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Manager{db: db, logger: logger.WithField("component", "keys.Manager")}, nil
}

func (m *Manager) Close() error {
	return m.db.Close()
}

func pairKey(group, sender ID) (string, string) {
	return group.String(), sender.String()
}

// loadLocked reads the stored table for (group, sender) without taking the
// lock itself; callers hold m.mutex.
func (m *Manager) loadLocked(group, sender ID) (Table, bool) {
	g, s := pairKey(group, sender)
	var digest string
	var stamp int64
	row := m.db.QueryRow(`SELECT digest, stamp FROM group_keys_meta WHERE group_id = ? AND sender_id = ?`, g, s)
	if err := row.Scan(&digest, &stamp); err != nil {
		return Table{}, false
	}
	rows, err := m.db.Query(`SELECT member_id, wrapped_key FROM group_keys WHERE group_id = ? AND sender_id = ?`, g, s)
	if err != nil {
		return Table{}, false
	}
	defer rows.Close()
	table := Table{Digest: digest, Time: time.Unix(stamp, 0), Keys: make(map[string]string)}
	for rows.Next() {
		var member, wrapped string
		if err := rows.Scan(&member, &wrapped); err == nil {
			table.Keys[member] = wrapped
		}
	}
	return table, true
}

func (m *Manager) writeLocked(group, sender ID, table Table) error {
	g, s := pairKey(group, sender)
	tx, err := m.db.Begin()
	if err != nil {
		return err
	}
	if _, err := tx.Exec(`INSERT INTO group_keys_meta (group_id, sender_id, digest, stamp) VALUES (?, ?, ?, ?)
		ON CONFLICT(group_id, sender_id) DO UPDATE SET digest = excluded.digest, stamp = excluded.stamp`,
		g, s, table.Digest, table.Time.Unix()); err != nil {
		tx.Rollback()
		return err
	}
	if _, err := tx.Exec(`DELETE FROM group_keys WHERE group_id = ? AND sender_id = ?`, g, s); err != nil {
		tx.Rollback()
		return err
	}
	for member, wrapped := range table.Keys {
		if _, err := tx.Exec(`INSERT INTO group_keys (group_id, sender_id, member_id, wrapped_key) VALUES (?, ?, ?, ?)`,
			g, s, member, wrapped); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

// Save merges incoming into the stored table per the section 4.3 rule,
// returning true iff something changed (and was written).
func (m *Manager) Save(group, sender ID, incoming Table) bool {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	old, hasOld := m.loadLocked(group, sender)
	merged, changed := merge(old, hasOld, incoming)
	if !changed {
		return false
	}
	if err := m.writeLocked(group, sender, merged); err != nil {
		m.logger.WithError(err).WithFields(logrus.Fields{
			"group": group.String(), "sender": sender.String(),
		}).Error("failed to persist group key table")
		return false
	}
	return true
}

// Load returns the current merged table for (group, sender), or false if
// none has ever been saved.
func (m *Manager) Load(group, sender ID) (Table, bool) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.loadLocked(group, sender)
}

// Get returns a single member's wrapped key, if known.
func (m *Manager) Get(group, sender, member ID) (string, bool) {
	table, ok := m.Load(group, sender)
	if !ok {
		return "", false
	}
	wrapped, ok := table.Keys[member.String()]
	return wrapped, ok
}
