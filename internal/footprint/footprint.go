// Package footprint implements the Footprint presence tracker (spec.md
// section 4.5): a process-wide last-activity map, flushed periodically to a
// flat JSON file, consulted by the distributor to decide in-memory delivery
// vs. durable inboxing.
package footprint

import (
	"encoding/json"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/dimchat/assistant-go/internal/facebook"
	. "github.com/dimchat/mkm-go/protocol"
	"github.com/sirupsen/logrus"
)

const (
	// Expires is how long a user can go silent before being considered
	// vanished (spec.md section 3).
	Expires = 36000 * time.Second
	// Interval is how often touch() flushes to disk.
	Interval = 600 * time.Second
	// Monthly bounds how long a stale entry survives a flush.
	Monthly = 30 * 24 * time.Hour
)

type entry struct {
	id       ID
	lastTime time.Time
}

// record is the on-disk JSON shape of protected/active_users.js.
type record struct {
	ID      string `json:"ID"`
	Time    int64  `json:"time"`
	TimeStr string `json:"time_str"`
}

// Footprint tracks last-seen time per user. It is constructed once per bot
// process and shared by reference (spec.md section 9 explicitly rejects
// hidden globals in favor of an explicitly passed instance).
type Footprint struct {
	mutex         sync.Mutex
	entries       map[string]*entry
	path          string
	nextFlushTime time.Time
	facebook      facebook.Facebook
	logger        logrus.FieldLogger
}

// New constructs a Footprint backed by path (protected/active_users.js by
// convention). facebook may be nil if document-time reconciliation is not
// needed (tests).
func New(path string, fb facebook.Facebook, logger logrus.FieldLogger) *Footprint {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	fp := &Footprint{
		entries:  make(map[string]*entry),
		path:     path,
		facebook: fb,
		logger:   logger.WithField("component", "footprint"),
	}
	fp.load()
	return fp
}

func (fp *Footprint) load() {
	data, err := os.ReadFile(fp.path)
	if err != nil {
		return
	}
	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		fp.logger.WithError(err).Warn("failed to parse active users file")
		return
	}
	for _, rec := range records {
		id := IDParse(rec.ID)
		if id == nil {
			continue
		}
		fp.entries[id.String()] = &entry{id: id, lastTime: time.Unix(rec.Time, 0)}
	}
}

// Touch records activity for id at when, clamped to now if missing, zero, or
// in the future. Groups are ignored (spec.md section 4.5).
func (fp *Footprint) Touch(id ID, when time.Time) bool {
	if id == nil || id.IsGroup() {
		return false
	}
	now := time.Now()
	if when.IsZero() || when.After(now) {
		when = now
	}

	fp.mutex.Lock()
	defer fp.mutex.Unlock()

	key := id.String()
	existing, found := fp.entries[key]
	if found {
		if when.After(existing.lastTime) {
			existing.lastTime = when
		}
	} else {
		fp.entries[key] = &entry{id: id, lastTime: when}
	}

	if now.After(fp.nextFlushTime) || now.Equal(fp.nextFlushTime) {
		fp.flushLocked(now)
		fp.nextFlushTime = now.Add(Interval)
	}
	return true
}

// IsVanished reports whether id's last activity is older than Expires. An id
// with no recorded activity is considered vanished.
func (fp *Footprint) IsVanished(id ID) bool {
	if id == nil {
		return true
	}
	fp.mutex.Lock()
	defer fp.mutex.Unlock()
	existing, found := fp.entries[id.String()]
	if !found {
		return true
	}
	return time.Since(existing.lastTime) > Expires
}

// ActiveUsers returns every tracked user sorted by last-seen time
// descending.
func (fp *Footprint) ActiveUsers() []ID {
	fp.mutex.Lock()
	defer fp.mutex.Unlock()
	list := fp.sortedLocked()
	ids := make([]ID, len(list))
	for i, e := range list {
		ids[i] = e.id
	}
	return ids
}

func (fp *Footprint) sortedLocked() []*entry {
	list := make([]*entry, 0, len(fp.entries))
	for _, e := range fp.entries {
		list = append(list, e)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].lastTime.After(list[j].lastTime)
	})
	return list
}

// flushLocked sorts, reconciles against Facebook document times, drops
// entries that are no longer "recently active", and writes the file. Caller
// holds fp.mutex.
func (fp *Footprint) flushLocked(now time.Time) {
	list := fp.sortedLocked()
	kept := make(map[string]*entry, len(list))
	records := make([]record, 0, len(list))
	for _, e := range list {
		if fp.facebook != nil {
			if doc, ok := fp.facebook.Document(e.id); ok && doc.Time.After(e.lastTime) {
				e.lastTime = doc.Time
			}
		}
		if now.Sub(e.lastTime) >= Monthly {
			continue
		}
		kept[e.id.String()] = e
		records = append(records, record{
			ID:      e.id.String(),
			Time:    e.lastTime.Unix(),
			TimeStr: e.lastTime.UTC().Format(time.RFC3339),
		})
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Time > records[j].Time })
	fp.entries = kept

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		fp.logger.WithError(err).Error("failed to marshal active users")
		return
	}
	if err := os.WriteFile(fp.path, data, 0o644); err != nil {
		fp.logger.WithError(err).WithField("path", fp.path).Error("failed to write active users file")
	}
}

// Flush forces an immediate disk write, ignoring the interval gate. Used at
// shutdown.
func (fp *Footprint) Flush() {
	fp.mutex.Lock()
	defer fp.mutex.Unlock()
	fp.flushLocked(time.Now())
}
