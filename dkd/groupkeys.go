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
	. "github.com/dimchat/mkm-go/protocol"
)

// GroupKeysContent is the concrete wire shape for the "chat.dim.group"/"keys"
// customized content (query/update/request/respond).
type GroupKeysContent struct {
	BaseContent
}

func NewGroupKeysContent(group ID, from ID, act string) *GroupKeysContent {
	content := new(GroupKeysContent)
	content.BaseContent = *NewContent(nil, CUSTOMIZED)
	content.Set("app", GroupKeysApp)
	content.Set("mod", GroupKeysMod)
	content.Set("act", act)
	content.SetGroup(group)
	content.Set("from", from.String())
	return content
}

func (content *GroupKeysContent) App() string {
	return CustomizedContentGetApp(content.Map())
}

func (content *GroupKeysContent) Mod() string {
	return CustomizedContentGetMod(content.Map())
}

func (content *GroupKeysContent) Act() string {
	return CustomizedContentGetAct(content.Map())
}

func (content *GroupKeysContent) From() ID {
	return GroupKeysContentGetFrom(content.Map())
}

func (content *GroupKeysContent) Keys() map[string]string {
	return GroupKeysContentGetKeys(content.Map())
}

func (content *GroupKeysContent) Digest() string {
	return GroupKeysContentGetDigest(content.Map())
}

func (content *GroupKeysContent) Members() []ID {
	return GroupKeysContentGetMembers(content.Map())
}

func (content *GroupKeysContent) CorrelationID() string {
	return GroupKeysContentGetCorrelationID(content.Map())
}

// SetCorrelationID stamps the id under which a 'query' is logged when sent,
// so the send can be matched against the sender's reply.
func (content *GroupKeysContent) SetCorrelationID(id string) {
	content.Set("cid", id)
}

// SetKeys installs the wrapped key table (member ID string -> ciphertext),
// stamping the digest entry alongside the per-member ciphertexts.
func (content *GroupKeysContent) SetKeys(digest string, keys map[string]string) {
	raw := make(map[string]interface{}, len(keys)+1)
	for member, cipher := range keys {
		raw[member] = cipher
	}
	raw["digest"] = digest
	content.Set("keys", raw)
}

// SetMembers stamps the member list for a query/request action.
func (content *GroupKeysContent) SetMembers(members []ID) {
	list := make([]interface{}, len(members))
	for i, id := range members {
		list[i] = id.String()
	}
	content.Set("members", list)
}

type groupKeysContentFactory struct{}

func (groupKeysContentFactory) ParseCustomizedContent(info map[string]interface{}) CustomizedContent {
	content := new(GroupKeysContent)
	content.LoadDictionary(&info)
	return content
}

func init() {
	RegisterCustomizedDispatch(baseContentFactory{})
	CustomizedContentRegister(GroupKeysApp, GroupKeysMod, groupKeysContentFactory{})
}
