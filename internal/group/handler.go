// Package group implements the GroupMessageHandler (spec.md section 4.2):
// single-producer queue that either splits a group-addressed message into
// one secret per member, or replays a group-control command through the
// Messenger, merging and querying wrapped keys via the GroupKeyManager and
// handing each split secret to the Distributor.
package group

import (
	"context"
	"fmt"
	"time"

	. "github.com/dimchat/assistant-go/dkd"
	"github.com/dimchat/assistant-go/internal/distributor"
	"github.com/dimchat/assistant-go/internal/facebook"
	"github.com/dimchat/assistant-go/internal/keys"
	"github.com/dimchat/assistant-go/internal/messenger"
	. "github.com/dimchat/assistant-go/protocol"
	. "github.com/dimchat/assistant-go/types"
	. "github.com/dimchat/mkm-go/protocol"
	"github.com/sirupsen/logrus"
)

// QueuePriority matches the "priority 1" wording of spec.md section 4.2.1/
// 4.2.3: receipts and KeyQuery are sent promptly, ahead of routine traffic.
const QueuePriority = 1

// Handler is the GroupMessageHandler. Callers on other goroutines use
// AppendMessage to enqueue and HandleKeysContent for direct key commands;
// the background loop started by Run is the single consumer of the queue
// (spec.md section 4.2: "single-producer thread / multi-consumer-free").
type Handler struct {
	queue       chan ReliableMessage
	facebook    facebook.Facebook
	keyManager  *keys.Manager
	keyHandler  *keys.Handler
	distributor *distributor.Distributor
	messenger   messenger.Messenger
	logger      logrus.FieldLogger
}

// Config bounds the queue (spec.md section 5's "open question" on
// backpressure, resolved in SPEC_FULL.md section C): a full queue drops the
// message with a log line rather than blocking the caller.
type Config struct {
	QueueCapacity int
}

func New(cfg Config, fb facebook.Facebook, keyManager *keys.Manager, dist *distributor.Distributor, msgr messenger.Messenger, logger logrus.FieldLogger) *Handler {
	if cfg.QueueCapacity <= 0 {
		cfg.QueueCapacity = 1 << 16
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Handler{
		queue:       make(chan ReliableMessage, cfg.QueueCapacity),
		facebook:    fb,
		keyManager:  keyManager,
		keyHandler:  keys.NewHandler(keyManager),
		distributor: dist,
		messenger:   msgr,
		logger:      logger.WithField("component", "group.Handler"),
	}
}

// AppendMessage enqueues m without waiting. Returns false if the queue is
// full; the caller (the ForwardContentProcessor) treats that as a dropped
// message, same as any other swallowed Transient failure (spec.md section 7).
func (h *Handler) AppendMessage(m ReliableMessage) bool {
	select {
	case h.queue <- m:
		return true
	default:
		h.logger.WithField("sender", m.Sender().String()).Warn("group handler queue full, dropping message")
		return false
	}
}

// Run drains the queue until ctx is cancelled, dispatching one message at a
// time (spec.md section 4.2.3: "per message, exceptions are caught, logged,
// and the loop continues; a message is not re-queued on failure").
func (h *Handler) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg := <-h.queue:
			h.dispatchSafely(msg)
		}
	}
}

func (h *Handler) dispatchSafely(msg ReliableMessage) {
	defer func() {
		if r := recover(); r != nil {
			h.logger.WithField("panic", fmt.Sprint(r)).Error("group message dispatch panicked, message dropped")
		}
	}()
	h.dispatch(msg)
}

// dispatch classifies by (receiver.isGroup, receiver.isBroadcast, group),
// matching spec.md section 4.2's pop/dispatch step.
func (h *Handler) dispatch(msg ReliableMessage) {
	receiver := msg.Receiver()
	if receiver == nil {
		h.logger.Warn("dropping message with nil receiver")
		return
	}
	switch {
	case receiver.IsGroup() && !receiver.IsBroadcast():
		h.splitGroupMessage(receiver, msg)
	case receiver.IsBroadcast() && msg.Group() != nil && !msg.Group().IsBroadcast():
		h.replayGroupCommand(msg)
	default:
		h.logger.WithField("receiver", receiver.String()).Warn("group handler received message it cannot classify")
	}
}

// splitGroupMessage implements section 4.2.1.
func (h *Handler) splitGroupMessage(group ID, msg ReliableMessage) {
	sender := msg.Sender()
	logger := h.logger.WithFields(logrus.Fields{"group": group.String(), "sender": sender.String()})

	// 1. Merge keys, then load the current merged table.
	if incoming := msg.EncryptedKeys(); len(incoming) > 0 {
		table := keys.Table{Time: time.Now(), Keys: make(map[string]string, len(incoming))}
		for member, wrapped := range incoming {
			if member == "digest" {
				table.Digest = wrapped
				continue
			}
			table.Keys[member] = wrapped
		}
		h.keyManager.Save(group, sender, table)
	}
	table, ok := h.keyManager.Load(group, sender)
	if !ok {
		logger.Warn("aborting split: no key table on file")
		return
	}

	// 2. Membership check.
	members := h.facebook.Members(group)
	if !containsID(members, sender) {
		logger.Warn("rejecting split: sender is not a group member")
		receipt := NewTextContent("You are not a member of this group")
		h.messenger.SendContent(sender, group, receipt, QueuePriority)
		return
	}

	// 3. Split.
	var missed []ID
	for _, member := range members {
		if sameID(member, sender) {
			continue
		}
		wrapped, ok := table.Keys[member.String()]
		if !ok {
			missed = append(missed, member)
			continue
		}
		clone := CopyMap(msg.GetMap(true))
		delete(clone, "keys")
		clone["group"] = group.String()
		clone["receiver"] = member.String()
		clone["key"] = wrapped
		split := ReliableMessageParse(clone)
		if split == nil {
			logger.WithField("member", member.String()).Error("failed to build split message")
			continue
		}
		h.distributor.Cache(split, member)
	}

	// 4. Query missing.
	if len(missed) > 0 && table.Digest != "" {
		query := keys.NewQuery(group, sender, table.Digest, missed)
		logger.WithField("cid", query.(GroupKeysContent).CorrelationID()).Info("querying missing member keys")
		h.messenger.SendContent(sender, group, query, QueuePriority)
	}
}

// HandleKeysContent dispatches an inbound chat.dim.group/keys content
// addressed directly to this bot (section 4.3's update/request halves);
// query/respond are bot-initiated only (see keys.NewQuery) and are not
// expected here. Called from internal/cpu's domain dispatch once the
// messenger has decrypted a secret meant for the bot itself.
func (h *Handler) HandleKeysContent(content GroupKeysContent, sender ID) Content {
	switch content.Act() {
	case GroupKeysActUpdate:
		return h.keyHandler.HandleUpdate(content)
	case GroupKeysActRequest:
		return h.keyHandler.HandleRequest(content, sender)
	default:
		h.logger.WithField("act", content.Act()).Warn("group keys content with unexpected act ignored")
		return nil
	}
}

// replayGroupCommand implements section 4.2.2.
func (h *Handler) replayGroupCommand(msg ReliableMessage) {
	responses := h.messenger.ProcessReliableMessage(msg)
	for _, resp := range responses {
		h.messenger.SendReliableMessage(resp, 0)
	}
}

func containsID(list []ID, id ID) bool {
	for _, item := range list {
		if sameID(item, id) {
			return true
		}
	}
	return false
}

func sameID(a, b ID) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.String() == b.String()
}
