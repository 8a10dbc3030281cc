package facebook

import (
	"database/sql"
	"fmt"
	"time"

	. "github.com/dimchat/mkm-go/protocol"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS members (
	group_id TEXT NOT NULL,
	member_id TEXT NOT NULL,
	PRIMARY KEY (group_id, member_id)
);
CREATE TABLE IF NOT EXISTS documents (
	id TEXT PRIMARY KEY,
	doc_time INTEGER NOT NULL
);
`

// Store is the sqlite-backed half of Facebook this module owns: group
// membership seeded at bot start and identity-document timestamps refreshed
// as documents arrive. It never talks to the network; populating it is the
// caller's job (out of scope per spec.md section 1).
type Store struct {
	db *sql.DB
}

func NewStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", "file:"+path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("facebook: open store: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("facebook: apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// SetMembers replaces a group's stored membership list.
func (s *Store) SetMembers(group ID, members []ID) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM members WHERE group_id = ?`, group.String()); err != nil {
		tx.Rollback()
		return err
	}
	for _, member := range members {
		if _, err := tx.Exec(`INSERT OR IGNORE INTO members (group_id, member_id) VALUES (?, ?)`,
			group.String(), member.String()); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

func (s *Store) Members(group ID) []ID {
	rows, err := s.db.Query(`SELECT member_id FROM members WHERE group_id = ?`, group.String())
	if err != nil {
		return nil
	}
	defer rows.Close()
	var members []ID
	for rows.Next() {
		var text string
		if err := rows.Scan(&text); err != nil {
			continue
		}
		if id := IDParse(text); id != nil {
			members = append(members, id)
		}
	}
	return members
}

// PutDocument stamps the freshest known update time for an identity.
func (s *Store) PutDocument(id ID, when time.Time) error {
	_, err := s.db.Exec(`INSERT INTO documents (id, doc_time) VALUES (?, ?)
		ON CONFLICT(id) DO UPDATE SET doc_time = excluded.doc_time WHERE excluded.doc_time > documents.doc_time`,
		id.String(), when.Unix())
	return err
}

func (s *Store) Document(id ID) (Document, bool) {
	var stamp int64
	row := s.db.QueryRow(`SELECT doc_time FROM documents WHERE id = ?`, id.String())
	if err := row.Scan(&stamp); err != nil {
		return Document{}, false
	}
	return Document{ID: id, Time: time.Unix(stamp, 0)}, true
}
