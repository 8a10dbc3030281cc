// Package distributor implements the Distributor + Inbox pair (spec.md
// section 4.4): the single enqueue point for per-member messages, choosing
// between an in-memory pending queue and the durable Inbox by consulting
// Footprint, plus the background drain loop that forwards whichever queue
// holds each woken-up receiver's messages.
package distributor

import (
	"context"
	"sync"
	"time"

	. "github.com/dimchat/assistant-go/dkd"
	"github.com/dimchat/assistant-go/internal/footprint"
	"github.com/dimchat/assistant-go/internal/messenger"
	. "github.com/dimchat/assistant-go/protocol"
	. "github.com/dimchat/mkm-go/protocol"
	"github.com/sirupsen/logrus"
)

// SlowTick is the background drain interval (spec.md section 5: "idle
// iterations sleep at the SLOW interval (~1s)").
const SlowTick = time.Second

// Distributor is the single cache() entry point plus the drain loop that
// actually forwards. One mutex guards pending and wakeup together, matching
// spec.md section 4.4's concurrency note; Inbox I/O happens outside the
// lock except for the store-on-cache path, which the spec explicitly
// accepts as the one I/O-under-lock exception.
type Distributor struct {
	mutex     sync.Mutex
	pending   map[string][]ReliableMessage
	wakeup    map[string]bool
	inbox     *Inbox
	footprint *footprint.Footprint
	messenger messenger.Messenger
	logger    logrus.FieldLogger
	running   bool
}

func New(inbox *Inbox, fp *footprint.Footprint, msgr messenger.Messenger, logger logrus.FieldLogger) *Distributor {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Distributor{
		pending:   make(map[string][]ReliableMessage),
		wakeup:    make(map[string]bool),
		inbox:     inbox,
		footprint: fp,
		messenger: msgr,
		logger:    logger.WithField("component", "distributor"),
	}
}

// Cache is the single enqueue entry point (spec.md section 4.4): vanished
// receivers get durable Inbox storage, everyone else gets the in-memory
// pending queue plus a wakeup mark.
func (d *Distributor) Cache(msg ReliableMessage, receiver ID) {
	if d.footprint.IsVanished(receiver) {
		d.mutex.Lock()
		defer d.mutex.Unlock()
		if err := d.inbox.Store(receiver, msg); err != nil {
			d.logger.WithError(err).WithField("receiver", receiver.String()).Error("failed to store inbox message")
		}
		return
	}
	d.mutex.Lock()
	defer d.mutex.Unlock()
	key := receiver.String()
	d.pending[key] = append(d.pending[key], msg)
	d.wakeup[key] = true
}

// WakeupUser forces a drain attempt for id on the next tick (used on
// reconnect).
func (d *Distributor) WakeupUser(id ID) {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	d.wakeup[id.String()] = true
}

// Run drives the background drain loop until ctx is cancelled.
func (d *Distributor) Run(ctx context.Context) {
	d.mutex.Lock()
	d.running = true
	d.mutex.Unlock()

	ticker := time.NewTicker(SlowTick)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			d.mutex.Lock()
			d.running = false
			d.mutex.Unlock()
			return
		case <-ticker.C:
			d.tick()
		}
	}
}

func (d *Distributor) takeWakeupLocked() []string {
	ids := make([]string, 0, len(d.wakeup))
	for id := range d.wakeup {
		ids = append(ids, id)
	}
	d.wakeup = make(map[string]bool)
	return ids
}

func (d *Distributor) tick() {
	d.mutex.Lock()
	ids := d.takeWakeupLocked()
	d.mutex.Unlock()

	for _, idText := range ids {
		receiver := IDParse(idText)
		if receiver == nil {
			continue
		}
		d.drain(receiver)
	}
}

// drain forwards every queued message for receiver: in-memory first, then
// durable, so bursts see the lowest extra latency (spec.md section 4.4).
func (d *Distributor) drain(receiver ID) {
	if d.footprint.IsVanished(receiver) {
		return
	}

	d.mutex.Lock()
	key := receiver.String()
	queued := d.pending[key]
	delete(d.pending, key)
	d.mutex.Unlock()

	stored := d.inbox.Load(receiver)

	for _, msg := range queued {
		d.forward(receiver, msg, false)
	}
	for _, msg := range stored {
		d.forward(receiver, msg, true)
	}
}

func (d *Distributor) forward(receiver ID, msg ReliableMessage, fromInbox bool) {
	content := NewForwardContent([]ReliableMessage{msg})
	ok := d.messenger.SendContent(receiver, nil, content, 0)
	if !ok {
		d.logger.WithField("receiver", receiver.String()).Warn("forward failed, message dropped per at-least-once policy")
		return
	}
	if fromInbox {
		if err := d.inbox.Remove(receiver, msg); err != nil {
			d.logger.WithError(err).WithField("receiver", receiver.String()).Error("failed to clear forwarded inbox entry")
		}
	}
}
