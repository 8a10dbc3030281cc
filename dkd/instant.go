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
	. "github.com/dimchat/mkm-go/crypto"
	. "github.com/dimchat/mkm-go/protocol"
)

// PlainMessage is the map-backed InstantMessage implementation: an envelope
// plus a plaintext 'content' field.
type PlainMessage struct {
	MessageEnvelope

	_content Content
}

func NewPlainMessage(info map[string]interface{}, head Envelope, body Content) *PlainMessage {
	msg := new(PlainMessage)
	if info != nil {
		msg.LoadDictionary(&info)
		return msg
	}
	dict := CopyMap(head.GetMap(true))
	msg.LoadDictionary(&dict)
	msg.Set("content", body.GetMap(true))
	msg._content = body
	return msg
}

func (msg *PlainMessage) Content() Content {
	if msg._content == nil {
		msg._content = ContentParse(msg.Get("content"))
	}
	return msg._content
}

func (msg *PlainMessage) Encrypt(_ SymmetricKey, _ []ID) SecureMessage {
	panic("encrypt is out of scope for the group-message engine")
}
