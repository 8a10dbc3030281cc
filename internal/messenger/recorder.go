package messenger

import (
	"sync"

	. "github.com/dimchat/assistant-go/protocol"
	. "github.com/dimchat/mkm-go/protocol"
)

// SentContent is one SendContent call captured by Recorder.
type SentContent struct {
	Receiver ID
	Group    ID
	Content  Content
	Priority int
}

// Recorder is an in-memory Messenger double used by tests: it never touches
// the network, it just remembers what was asked of it. ProcessFunc lets a
// test script canned responses for ProcessReliableMessage; DecryptFunc does
// the same for DecryptContent.
type Recorder struct {
	mutex       sync.Mutex
	Sent        []SentContent
	Relayed     []ReliableMessage
	ProcessFunc func(msg ReliableMessage) []ReliableMessage
	DecryptFunc func(msg ReliableMessage) (Content, bool)
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) SendContent(receiver ID, group ID, content Content, priority int) bool {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.Sent = append(r.Sent, SentContent{Receiver: receiver, Group: group, Content: content, Priority: priority})
	return true
}

func (r *Recorder) SendReliableMessage(msg ReliableMessage, priority int) bool {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.Relayed = append(r.Relayed, msg)
	return true
}

func (r *Recorder) ProcessReliableMessage(msg ReliableMessage) []ReliableMessage {
	if r.ProcessFunc == nil {
		return nil
	}
	return r.ProcessFunc(msg)
}

func (r *Recorder) DecryptContent(msg ReliableMessage) (Content, bool) {
	if r.DecryptFunc == nil {
		return nil, false
	}
	return r.DecryptFunc(msg)
}
