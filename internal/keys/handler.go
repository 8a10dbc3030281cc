package keys

import (
	"time"

	. "github.com/dimchat/assistant-go/dkd"
	. "github.com/dimchat/assistant-go/protocol"
	. "github.com/dimchat/mkm-go/protocol"
	"github.com/google/uuid"
)

// Handler implements the key-command side of spec.md section 4.3: the
// update/request halves of the chat.dim.group/keys sub-protocol. query and
// respond are bot-initiated (query built by NewQuery and sent by
// internal/group, respond returned by HandleRequest) and are never received
// here.
type Handler struct {
	manager *Manager
}

func NewHandler(manager *Manager) *Handler {
	return &Handler{manager: manager}
}

// HandleUpdate processes an incoming 'update' (sender -> bot): merges the
// carried keys and returns a text receipt for the sender.
func (h *Handler) HandleUpdate(content GroupKeysContent) Content {
	group := content.Group()
	from := content.From()
	if group == nil || from == nil {
		return NewTextContent("Failed to update: missing group or sender")
	}
	raw := content.Keys()
	if raw == nil {
		return NewTextContent("Failed to update: missing keys")
	}
	digest := raw["digest"]
	table := Table{Digest: digest, Time: time.Now(), Keys: make(map[string]string, len(raw))}
	for member, wrapped := range raw {
		if member == "digest" {
			continue
		}
		table.Keys[member] = wrapped
	}
	h.manager.Save(group, from, table)
	return NewTextContent("Group keys updated")
}

// HandleRequest processes an incoming 'request' (member -> bot, body carries
// from=keySender): looks up the member's own wrapped key and returns a
// 'respond' content, or a failure receipt if none is on file.
func (h *Handler) HandleRequest(content GroupKeysContent, member ID) Content {
	group := content.Group()
	keySender := content.From()
	if group == nil || keySender == nil {
		return NewTextContent("Failed to respond: missing group or key sender")
	}
	table, ok := h.manager.Load(group, keySender)
	if !ok {
		return NewTextContent("Failed to respond: no key table on file")
	}
	wrapped, ok := table.Keys[member.String()]
	if !ok {
		return NewTextContent("Failed to respond: no wrapped key for this member")
	}
	respond := NewGroupKeysContent(group, keySender, GroupKeysActRespond)
	respond.SetKeys(table.Digest, map[string]string{member.String(): wrapped})
	respond.Set("time", table.Time.Unix())
	return respond
}

// NewQuery builds the bot -> sender 'query' content for a set of members
// whose wrapped key is still missing after a split (spec.md section 4.2.1
// step 4). Each query is stamped with a fresh correlation id so the log
// line that sends it can be matched against the sender's eventual reply.
func NewQuery(group ID, sender ID, digest string, missing []ID) Content {
	query := NewGroupKeysContent(group, sender, GroupKeysActQuery)
	if digest != "" {
		query.SetKeys(digest, map[string]string{})
	}
	query.SetMembers(missing)
	query.SetCorrelationID(uuid.New().String())
	return query
}
