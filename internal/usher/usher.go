// Package usher implements the liveness -> invite hook named in spec.md's
// "Liveness path" (section 2) and section 4.6: when a previously-vanished
// user posts activity again, invite them back into the active group. Kept
// separate from footprint so Footprint stays a pure presence tracker with
// no group-invitation policy (spec.md section 9).
package usher

import (
	"github.com/dimchat/assistant-go/internal/facebook"
	"github.com/dimchat/assistant-go/internal/messenger"
	. "github.com/dimchat/assistant-go/dkd"
	. "github.com/dimchat/mkm-go/protocol"
	"github.com/sirupsen/logrus"
)

// Hook is invoked by Service for each vanish -> active edge it observes
// (spec.md section 8 invariant 7).
type Hook struct {
	group     ID
	facebook  facebook.Facebook
	messenger messenger.Messenger
	logger    logrus.FieldLogger
}

func New(group ID, fb facebook.Facebook, msgr messenger.Messenger, logger logrus.FieldLogger) *Hook {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Hook{group: group, facebook: fb, messenger: msgr, logger: logger.WithField("component", "usher.Hook")}
}

// OnNewUser re-invites user into the configured group by nudging them with
// a text notice; real invite-command issuance belongs to the conversational
// surface (out of core scope per spec.md section 1) — this is the one call
// the core contract requires (section 4.6).
func (h *Hook) OnNewUser(user ID) {
	members := h.facebook.Members(h.group)
	for _, member := range members {
		if member.String() == user.String() {
			return
		}
	}
	h.logger.WithFields(logrus.Fields{"user": user.String(), "group": h.group.String()}).Info("inviting returning user back into group")
	notice := NewTextContent("Welcome back! You have been re-invited to the group.")
	h.messenger.SendContent(user, h.group, notice, 0)
}
