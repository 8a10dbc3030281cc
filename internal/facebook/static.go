package facebook

import (
	"sync"
	"time"

	. "github.com/dimchat/mkm-go/protocol"
)

// Static is an in-memory Facebook double for tests and for seeding a bot's
// membership from its config file. Grounded on the teacher pack's preference
// for small mutex-guarded map doubles over interface mocking frameworks.
type Static struct {
	mutex     sync.RWMutex
	members   map[string][]ID
	documents map[string]Document
}

func NewStatic() *Static {
	return &Static{
		members:   make(map[string][]ID),
		documents: make(map[string]Document),
	}
}

func (s *Static) SetMembers(group ID, members []ID) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.members[group.String()] = members
}

func (s *Static) Members(group ID) []ID {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.members[group.String()]
}

func (s *Static) SetDocument(id ID, when time.Time) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.documents[id.String()] = Document{ID: id, Time: when}
}

func (s *Static) Document(id ID) (Document, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	doc, ok := s.documents[id.String()]
	return doc, ok
}
