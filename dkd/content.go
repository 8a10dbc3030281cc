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
	"math/rand"
	"time"
)

// BaseContent is the map-backed Content implementation every concrete
// content kind (text, command, forward, group keys, monitor...) embeds.
type BaseContent struct {
	Dictionary
}

func NewContent(info map[string]interface{}, msgType ContentType) *BaseContent {
	content := new(BaseContent)
	if info != nil {
		content.LoadDictionary(&info)
		return content
	}
	dict := make(map[string]interface{})
	content.LoadDictionary(&dict)
	content.Set("type", msgType)
	content.Set("sn", rand.Uint32())
	content.SetTime("time", time.Now())
	return content
}

func (content *BaseContent) Type() ContentType {
	return ContentGetType(content.Map())
}

func (content *BaseContent) SN() uint32 {
	return ContentGetSN(content.Map())
}

func (content *BaseContent) Time() time.Time {
	t := content.GetTime("time")
	if t.IsZero() {
		return ContentGetTime(content.Map())
	}
	return t
}

func (content *BaseContent) Group() ID {
	return ContentGetGroup(content.Map())
}

func (content *BaseContent) SetGroup(group ID) {
	ContentSetGroup(content.Map(), group)
}

// baseContentFactory parses any registered content type into a BaseContent;
// concrete content kinds register their own factory to get a richer type
// (see groupkeys.go, monitor.go, forward.go and text.go in this package).
type baseContentFactory struct{}

func (baseContentFactory) ParseContent(info map[string]interface{}) Content {
	return NewContent(info, 0)
}
