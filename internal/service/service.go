// Package service implements the minimal conversational surface named in
// spec.md section 4.6: a polled queue of Requests, dispatched by content
// kind, with the one core obligation (customized users/post -> touch ->
// onNewUser) implemented to contract and everything else left as an
// extension point.
package service

import (
	"context"
	"fmt"

	. "github.com/dimchat/assistant-go/dkd"
	"github.com/dimchat/assistant-go/internal/footprint"
	. "github.com/dimchat/assistant-go/protocol"
	. "github.com/dimchat/mkm-go/protocol"
	"github.com/sirupsen/logrus"
)

// Request is the convenience value used by conversational bots (spec.md
// section 3): the effective identifier is body.Group() if set, else
// head.Sender().
type Request struct {
	Head Envelope
	Body Content
}

// Identifier implements the "group messages respond to the group, direct
// messages to the sender" rule.
func (r Request) Identifier() ID {
	if group := r.Body.Group(); group != nil {
		return group
	}
	return r.Head.Sender()
}

// NewUserHook is invoked exactly once per vanish -> active edge observed
// within a users/post batch (spec.md section 8 invariant 7).
type NewUserHook func(user ID)

// CommandHandler lets bot-specific commands (current group, active users,
// …) plug into the dispatch loop without touching the core contract.
type CommandHandler func(req Request) Content

// Service is the polled-queue worker (spec.md section 4.6/5: "runs in its
// own long-lived worker executing a process() tick in a loop").
type Service struct {
	queue     chan Request
	footprint *footprint.Footprint
	onNewUser NewUserHook
	commands  map[string]CommandHandler
	logger    logrus.FieldLogger
}

func New(queueCapacity int, fp *footprint.Footprint, onNewUser NewUserHook, logger logrus.FieldLogger) *Service {
	if queueCapacity <= 0 {
		queueCapacity = 1 << 12
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Service{
		queue:     make(chan Request, queueCapacity),
		footprint: fp,
		onNewUser: onNewUser,
		commands:  make(map[string]CommandHandler),
		logger:    logger.WithField("component", "service.Service"),
	}
}

// RegisterCommand binds a text command name (lower-cased) to a handler; the
// conversational menu itself is out of core scope (spec.md section 1).
func (s *Service) RegisterCommand(name string, handler CommandHandler) {
	s.commands[name] = handler
}

// Submit feeds one request into the queue without blocking the caller.
func (s *Service) Submit(req Request) bool {
	select {
	case s.queue <- req:
		return true
	default:
		s.logger.Warn("service queue full, dropping request")
		return false
	}
}

// Run drains the queue until ctx is cancelled.
func (s *Service) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case req := <-s.queue:
			s.dispatchSafely(req)
		}
	}
}

func (s *Service) dispatchSafely(req Request) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.WithField("panic", fmt.Sprint(r)).Error("service request dispatch panicked")
		}
	}()
	s.dispatch(req)
}

func (s *Service) dispatch(req Request) {
	switch content := req.Body.(type) {
	case *UsersPostContent:
		s.handleUsersPost(content)
	case *TextMessageContent:
		if handler, ok := s.commands[content.Text()]; ok {
			handler(req)
		}
	case CustomizedContent:
		s.logger.WithFields(logrus.Fields{"app": content.App(), "mod": content.Mod()}).Debug("customized content has no registered handler")
	default:
		// file/other content kinds are conversational, out of core scope.
	}
}

// handleUsersPost is the one core obligation of section 4.6: touch every
// reported user and invoke onNewUser for each vanish -> active edge.
func (s *Service) handleUsersPost(content *UsersPostContent) {
	when := content.Time()
	for _, user := range content.Users() {
		wasVanished := s.footprint.IsVanished(user)
		s.footprint.Touch(user, when)
		if wasVanished && s.onNewUser != nil {
			s.onNewUser(user)
		}
	}
}
