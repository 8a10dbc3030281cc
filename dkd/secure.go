/* license: https://mit-license.org
 *
 *  Dao-Ke-Dao: Universal Message Module
 *
 *                                Written in 2020 by Moky <albert.moky@gmail.com>
 *
 * ==============================================================================
 * The MIT License (MIT)
 *
 * Copyright (c) 2020 Albert Moky
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 * ==============================================================================
 */
package dkd

import (
	. "github.com/dimchat/assistant-go/protocol"
	. "github.com/dimchat/assistant-go/types"
	. "github.com/dimchat/mkm-go/protocol"
	"encoding/base64"
)

// EncryptedMessage is the map-backed SecureMessage implementation. Split and
// Trim are the only transforms implemented here; the group-message engine
// calls neither (internal/group builds its per-member copies itself).
// Decrypt/Sign stay stubs because the transport/crypto layer is out of scope
// (spec section 1) — callers never reach them.
type EncryptedMessage struct {
	MessageEnvelope
}

func NewEncryptedMessage(info map[string]interface{}) *EncryptedMessage {
	msg := new(EncryptedMessage)
	msg.LoadDictionary(&info)
	return msg
}

func (msg *EncryptedMessage) EncryptedData() []byte {
	text := msg.GetString("data")
	if text == "" {
		return nil
	}
	data, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		return nil
	}
	return data
}

func (msg *EncryptedMessage) EncryptedKey() []byte {
	text := msg.GetString("key")
	if text == "" {
		return nil
	}
	data, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		return nil
	}
	return data
}

func (msg *EncryptedMessage) EncryptedKeys() map[string]string {
	raw := msg.GetStringMap("keys")
	if raw == nil {
		return nil
	}
	keys := make(map[string]string, len(raw))
	for id, value := range raw {
		if text, ok := value.(string); ok {
			keys[id] = text
		}
	}
	return keys
}

func (msg *EncryptedMessage) Decrypt() InstantMessage {
	panic("decrypt is out of scope for the group-message engine")
}

func (msg *EncryptedMessage) Sign() ReliableMessage {
	panic("sign is out of scope for the group-message engine")
}

// Split turns a group-addressed secure message into one per-member message,
// moving the receiver (the group ID) into the 'group' field and picking each
// member's own wrapped key out of 'keys'.
func (msg *EncryptedMessage) Split(members []ID) []SecureMessage {
	info := msg.CopyMap()
	keys := msg.EncryptedKeys()
	if keys != nil {
		delete(info, "keys")
	}
	_, reliable := info["signature"]
	info["group"] = msg.Receiver().String()

	messages := make([]SecureMessage, 0, len(members))
	for _, member := range members {
		clone := CopyMap(info)
		clone["receiver"] = member.String()
		if keys != nil {
			if wrapped, ok := keys[member.String()]; ok && wrapped != "" {
				clone["key"] = wrapped
			} else {
				delete(clone, "key")
			}
		}
		messages = append(messages, wrapSecureMessage(clone, reliable))
	}
	return messages
}

// Trim narrows a group secure message down to a single member's view,
// keeping it addressed as if it had been sent directly to that member.
func (msg *EncryptedMessage) Trim(member ID) SecureMessage {
	info := msg.CopyMap()
	keys := msg.EncryptedKeys()
	if keys != nil {
		if wrapped, ok := keys[member.String()]; ok && wrapped != "" {
			info["key"] = wrapped
		}
		delete(info, "keys")
	}
	if msg.Group() == nil {
		info["group"] = msg.Receiver().String()
	}
	info["receiver"] = member.String()
	_, reliable := info["signature"]
	return wrapSecureMessage(info, reliable)
}

func wrapSecureMessage(info map[string]interface{}, reliable bool) SecureMessage {
	if reliable {
		return NewRelayMessage(info)
	}
	return NewEncryptedMessage(info)
}
