/* license: https://mit-license.org
 *
 *  Dao-Ke-Dao: Universal Message Module
 *
 *                                Written in 2022 by Moky <albert.moky@gmail.com>
 *
 * ==============================================================================
 * The MIT License (MIT)
 *
 * Copyright (c) 2022 Albert Moky
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
)

// ForwardMessageContent is the concrete wire shape for a FORWARD content.
type ForwardMessageContent struct {
	BaseContent
}

func NewForwardContent(secrets []ReliableMessage) *ForwardMessageContent {
	content := new(ForwardMessageContent)
	content.BaseContent = *NewContent(nil, FORWARD)
	array := ReliableMessageRevert(secrets)
	if len(array) == 1 {
		content.Set("forward", array[0])
	} else {
		content.Set("secrets", array)
	}
	return content
}

func (content *ForwardMessageContent) Secrets() []ReliableMessage {
	return ForwardContentGetSecrets(content.Map())
}

type forwardContentFactory struct{}

func (forwardContentFactory) ParseContent(info map[string]interface{}) Content {
	content := new(ForwardMessageContent)
	content.LoadDictionary(&info)
	return content
}

func init() {
	ContentRegister(FORWARD, forwardContentFactory{})
}
