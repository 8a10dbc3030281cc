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
)

// TextMessageContent carries a plaintext reply — the only shape the core
// engine ever sends back to a human: permission-denied receipts, key-update
// acknowledgements (spec.md section 7's "User-visible behaviour is carried
// via TextContent / receipt contents").
type TextMessageContent struct {
	BaseContent
}

func NewTextContent(text string) *TextMessageContent {
	content := new(TextMessageContent)
	content.BaseContent = *NewContent(nil, TEXT)
	content.Set("text", text)
	return content
}

func (content *TextMessageContent) Text() string {
	return content.GetString("text")
}

type textContentFactory struct{}

func (textContentFactory) ParseContent(info map[string]interface{}) Content {
	content := new(TextMessageContent)
	content.LoadDictionary(&info)
	return content
}

func init() {
	ContentRegister(TEXT, textContentFactory{})
}
