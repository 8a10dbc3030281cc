// Package cpu implements the ForwardContentProcessor (spec.md section 4.1):
// the entry point that classifies each inner secret of an inbound Forward
// content and either hands it to the GroupMessageHandler or delegates it to
// the Messenger's own processing pipeline.
package cpu

import (
	"time"

	. "github.com/dimchat/assistant-go/dkd"
	"github.com/dimchat/assistant-go/internal/footprint"
	"github.com/dimchat/assistant-go/internal/group"
	"github.com/dimchat/assistant-go/internal/messenger"
	"github.com/dimchat/assistant-go/internal/service"
	. "github.com/dimchat/assistant-go/protocol"
	. "github.com/dimchat/mkm-go/protocol"
	"github.com/sirupsen/logrus"
)

// ForwardProcessor consumes a Forward content and returns a parallel
// sequence of responses, one slot per inner secret (an empty Forward for
// secrets handed off to the group handler, spec.md section 4.1). Inner
// secrets addressed directly to the bot are also the entry point for the
// chat.dim.group/keys and chat.dim.monitor/users domain content (section
// 4.3, section 4.6), dispatched by (app, mod) once the messenger decrypts
// them.
type ForwardProcessor struct {
	handler   *group.Handler
	service   *service.Service
	messenger messenger.Messenger
	footprint *footprint.Footprint
	logger    logrus.FieldLogger
}

func New(handler *group.Handler, svc *service.Service, msgr messenger.Messenger, fp *footprint.Footprint, logger logrus.FieldLogger) *ForwardProcessor {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &ForwardProcessor{handler: handler, service: svc, messenger: msgr, footprint: fp, logger: logger.WithField("component", "cpu.ForwardProcessor")}
}

// Process handles one outer secret carrying a Forward content, touching
// liveness for the outer sender and for every inner sender best-effort
// (spec.md section 4.1).
func (p *ForwardProcessor) Process(outerSender ID, content ForwardContent) []ForwardContent {
	p.footprint.Touch(outerSender, time.Now())

	secrets := content.Secrets()
	responses := make([]ForwardContent, len(secrets))
	for i, item := range secrets {
		responses[i] = p.processOne(item)
	}
	return responses
}

func (p *ForwardProcessor) processOne(item ReliableMessage) ForwardContent {
	p.footprint.Touch(item.Sender(), time.Now())

	receiver := item.Receiver()
	if receiver == nil {
		p.logger.Warn("dropping forwarded secret with nil receiver")
		return emptyForward()
	}

	switch {
	case receiver.IsGroup() && receiver.IsBroadcast():
		p.logger.WithField("receiver", receiver.String()).Warn("rejecting broadcast group as receiver")
		return emptyForward()

	case receiver.IsGroup() && !receiver.IsBroadcast():
		p.handler.AppendMessage(item)
		return emptyForward()

	case receiver.IsBroadcast() && item.Group() != nil && !item.Group().IsBroadcast():
		p.handler.AppendMessage(item)
		return emptyForward()

	default:
		if content, ok := p.messenger.DecryptContent(item); ok {
			if handled, response := p.dispatchCustomized(content, item); handled {
				if response != nil {
					p.messenger.SendContent(item.Sender(), item.Group(), response, 0)
				}
				return emptyForward()
			}
		}
		results := p.messenger.ProcessReliableMessage(item)
		return NewForwardContent(results)
	}
}

// dispatchCustomized routes a decrypted CUSTOMIZED content addressed
// directly to this bot to the matching domain handler (section 4.3's
// update/request, section 4.6's users/post), leaving everything else
// (including query/respond, which are bot-initiated only) to the
// messenger's own processing pipeline.
func (p *ForwardProcessor) dispatchCustomized(content Content, msg ReliableMessage) (handled bool, response Content) {
	cc, ok := content.(CustomizedContent)
	if !ok {
		return false, nil
	}
	switch {
	case cc.App() == GroupKeysApp && cc.Mod() == GroupKeysMod:
		gk, ok := content.(GroupKeysContent)
		if !ok {
			return false, nil
		}
		return true, p.handler.HandleKeysContent(gk, msg.Sender())

	case cc.App() == MonitorApp && cc.Mod() == MonitorMod:
		up, ok := content.(*UsersPostContent)
		if !ok || up.Act() != MonitorActPost {
			return false, nil
		}
		p.service.Submit(service.Request{Head: msg.Envelope(), Body: up})
		return true, nil

	default:
		return false, nil
	}
}

func emptyForward() ForwardContent {
	return NewForwardContent(nil)
}
