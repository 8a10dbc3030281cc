package distributor

import (
	"encoding/json"

	. "github.com/dimchat/assistant-go/protocol"
)

// encode/decode serialize a ReliableMessage to/from its wire map form for
// Inbox storage. JSON is the stdlib choice here deliberately: the payload is
// an already-encrypted opaque blob plus string/number fields, there is no
// third-party wire format named anywhere in spec.md for inter-process
// storage, and every field already round-trips through map[string]interface{}.
func encode(msg ReliableMessage) ([]byte, error) {
	return json.Marshal(msg.Map())
}

func decode(payload []byte) (ReliableMessage, error) {
	var info map[string]interface{}
	if err := json.Unmarshal(payload, &info); err != nil {
		return nil, err
	}
	return ReliableMessageParse(info), nil
}
