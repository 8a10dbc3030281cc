package engine

import (
	"path/filepath"
	"testing"

	"github.com/dimchat/assistant-go/internal/config"
	"github.com/dimchat/assistant-go/internal/messenger"
	. "github.com/dimchat/assistant-go/protocol"
	. "github.com/dimchat/mkm-go/protocol"
	"github.com/stretchr/testify/require"
)

const botFixture = "moky@4WDfe3zZ4T7opFSi3iDAKiuTnUHjxmXekk"

func newTestBundle(t *testing.T, msgr messenger.Messenger) *Bundle {
	t.Helper()
	dir := t.TempDir()
	cfg := &config.Config{QueueCapacity: 64}
	cfg.Database.Root = dir
	cfg.Database.ProtectedRoot = filepath.Join(dir, "protected")

	bundle, err := New(cfg, msgr, nil)
	require.NoError(t, err)
	t.Cleanup(func() { bundle.Close() })
	return bundle
}

// TestHandleForwardIsTheSoleInboundEntryPoint exercises Bundle.HandleForward
// end to end, confirming it actually drives ForwardProcessor.Process (spec.md
// section 2's "Messenger -> ForwardContentProcessor" diagram) rather than
// leaving it unreachable: a direct-to-bot secret the messenger cannot
// decrypt still falls through to ProcessReliableMessage exactly as the
// pre-existing pipeline promised.
func TestHandleForwardIsTheSoleInboundEntryPoint(t *testing.T) {
	msgr := messenger.NewRecorder()
	called := false
	msgr.ProcessFunc = func(ReliableMessage) []ReliableMessage {
		called = true
		return nil
	}
	bundle := newTestBundle(t, msgr)

	bot := IDParse(botFixture)
	require.NotNil(t, bot)

	msg := ReliableMessageParse(map[string]interface{}{
		"sender":    botFixture,
		"receiver":  botFixture,
		"time":      1,
		"data":      "ZGF0YQ==",
		"signature": "c2ln",
	})
	require.NotNil(t, msg)

	responses := bundle.HandleForward(bot, NewForwardContent([]ReliableMessage{msg}))

	require.Len(t, responses, 1)
	require.True(t, called, "HandleForward must reach the messenger's processing pipeline through ForwardProcessor.Process")
}
