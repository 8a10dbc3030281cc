// Package engine wires the five core components (spec.md section 4) and the
// narrow external collaborators into one explicitly-constructed, dependency
// injected struct, replacing the source's singletons (spec.md section 9).
package engine

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/dimchat/assistant-go/internal/config"
	"github.com/dimchat/assistant-go/internal/cpu"
	"github.com/dimchat/assistant-go/internal/distributor"
	"github.com/dimchat/assistant-go/internal/facebook"
	"github.com/dimchat/assistant-go/internal/footprint"
	"github.com/dimchat/assistant-go/internal/group"
	"github.com/dimchat/assistant-go/internal/keys"
	"github.com/dimchat/assistant-go/internal/messenger"
	"github.com/dimchat/assistant-go/internal/service"
	"github.com/dimchat/assistant-go/internal/usher"
	. "github.com/dimchat/assistant-go/protocol"
	. "github.com/dimchat/mkm-go/protocol"
	"github.com/sirupsen/logrus"
)

// Bundle is the single engine instance a bot process builds at startup and
// threads through every component that needs one (spec.md section 9: "a
// single 'engine' bundle struct is preferred").
type Bundle struct {
	Config       *config.Config
	Facebook     *facebook.Store
	Messenger    messenger.Messenger
	Footprint    *footprint.Footprint
	KeyManager   *keys.Manager
	Inbox        *distributor.Inbox
	Distributor  *distributor.Distributor
	GroupHandler *group.Handler
	Forward      *cpu.ForwardProcessor
	Service      *service.Service
	Logger       logrus.FieldLogger
}

// New builds every component from cfg, wiring the data flow described in
// spec.md section 2. msgr is supplied by the caller since the transport
// itself is out of scope (spec.md section 1).
func New(cfg *config.Config, msgr messenger.Messenger, logger logrus.FieldLogger) (*Bundle, error) {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	fbStore, err := facebook.NewStore(filepath.Join(cfg.Database.Root, "facebook.db"))
	if err != nil {
		return nil, fmt.Errorf("engine: build facebook store: %w", err)
	}

	fp := footprint.New(filepath.Join(cfg.Database.ProtectedRoot, "active_users.js"), fbStore, logger)

	keyManager, err := keys.NewManager(filepath.Join(cfg.Database.Root, "group_keys.db"), logger)
	if err != nil {
		return nil, fmt.Errorf("engine: build key manager: %w", err)
	}

	inbox, err := distributor.NewInbox(filepath.Join(cfg.Database.Root, "inbox.db"))
	if err != nil {
		return nil, fmt.Errorf("engine: build inbox: %w", err)
	}

	dist := distributor.New(inbox, fp, msgr, logger)

	groupHandler := group.New(group.Config{QueueCapacity: cfg.QueueCapacity}, fbStore, keyManager, dist, msgr, logger)

	svc := service.New(cfg.QueueCapacity, fp, nil, logger)

	forward := cpu.New(groupHandler, svc, msgr, fp, logger)

	return &Bundle{
		Config:       cfg,
		Facebook:     fbStore,
		Messenger:    msgr,
		Footprint:    fp,
		KeyManager:   keyManager,
		Inbox:        inbox,
		Distributor:  dist,
		GroupHandler: groupHandler,
		Forward:      forward,
		Service:      svc,
		Logger:       logger,
	}, nil
}

// AttachUsher wires the usher bot's liveness -> invite hook into the
// Service instance (spec.md section 2's "Liveness path"). Called by
// cmd/usher only — cmd/assistant leaves the hook nil.
func (b *Bundle) AttachUsher(group ID) *usher.Hook {
	hook := usher.New(group, b.Facebook, b.Messenger, b.Logger)
	b.Service = service.New(b.Config.QueueCapacity, b.Footprint, hook.OnNewUser, b.Logger)
	// Forward holds the Service it submits users/post requests to, so it
	// must be rebuilt against the replacement instance above.
	b.Forward = cpu.New(b.GroupHandler, b.Service, b.Messenger, b.Footprint, b.Logger)
	return hook
}

// HandleForward is the Bundle's single inbound entry point (spec.md
// section 2's system diagram: "Messenger -> ForwardContentProcessor" is
// the sole way a secret enters the core pipeline). A transport calls this
// once it has unwrapped a chat.dim.forward content from its outer sender;
// from here the Forward processor fans out into the group handler, the
// key manager and the distributor per section 4.1.
func (b *Bundle) HandleForward(sender ID, content ForwardContent) []ForwardContent {
	return b.Forward.Process(sender, content)
}

// Run starts every long-lived worker (GroupMessageHandler, Distributor,
// Service) and blocks until ctx is cancelled (spec.md section 5: each
// component "runs in its own long-lived worker").
func (b *Bundle) Run(ctx context.Context) {
	go b.GroupHandler.Run(ctx)
	go b.Distributor.Run(ctx)
	go b.Service.Run(ctx)
	<-ctx.Done()
}

// Close releases every owned storage handle. The Messenger is owned by the
// caller and is not closed here.
func (b *Bundle) Close() error {
	b.Footprint.Flush()
	if err := b.KeyManager.Close(); err != nil {
		return err
	}
	if err := b.Inbox.Close(); err != nil {
		return err
	}
	return b.Facebook.Close()
}
