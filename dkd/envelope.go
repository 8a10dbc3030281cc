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
	"time"
)

// MessageEnvelope is the map-backed Envelope implementation shared by every
// message kind (instant/secure/reliable all embed one).
type MessageEnvelope struct {
	Dictionary
}

func NewMessageEnvelope(info map[string]interface{}, from ID, to ID, when time.Time) *MessageEnvelope {
	env := new(MessageEnvelope)
	if info != nil {
		env.LoadDictionary(&info)
		return env
	}
	if when.IsZero() {
		when = time.Now()
	}
	dict := make(map[string]interface{})
	env.LoadDictionary(&dict)
	env.Set("sender", from.String())
	env.Set("receiver", to.String())
	env.SetTime("time", when)
	return env
}

// Envelope returns the envelope view of this message; every concrete
// message kind embeds MessageEnvelope directly, so its own fields already
// are the envelope fields.
func (env *MessageEnvelope) Envelope() Envelope {
	return env
}

func (env *MessageEnvelope) Sender() ID {
	return EnvelopeGetSender(env.Map())
}

func (env *MessageEnvelope) Receiver() ID {
	return EnvelopeGetReceiver(env.Map())
}

func (env *MessageEnvelope) Time() time.Time {
	return env.GetTime("time")
}

func (env *MessageEnvelope) Group() ID {
	return EnvelopeGetGroup(env.Map())
}

func (env *MessageEnvelope) SetGroup(group ID) {
	EnvelopeSetGroup(env.Map(), group)
}

func (env *MessageEnvelope) Type() ContentType {
	return EnvelopeGetType(env.Map())
}

func (env *MessageEnvelope) SetType(msgType ContentType) {
	EnvelopeSetType(env.Map(), msgType)
}
