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

// UsersPostContent is the concrete wire shape for the
// "chat.dim.monitor"/"users"/"post" customized content.
type UsersPostContent struct {
	BaseContent
}

func NewUsersPostContent(users []ID) *UsersPostContent {
	content := new(UsersPostContent)
	content.BaseContent = *NewContent(nil, CUSTOMIZED)
	content.Set("app", MonitorApp)
	content.Set("mod", MonitorMod)
	content.Set("act", MonitorActPost)
	list := make([]interface{}, len(users))
	for i, id := range users {
		list[i] = id.String()
	}
	content.Set("users", list)
	return content
}

func (content *UsersPostContent) App() string {
	return CustomizedContentGetApp(content.Map())
}

func (content *UsersPostContent) Mod() string {
	return CustomizedContentGetMod(content.Map())
}

func (content *UsersPostContent) Act() string {
	return CustomizedContentGetAct(content.Map())
}

func (content *UsersPostContent) Users() []ID {
	return UsersPostContentGetUsers(content.Map())
}

type usersPostContentFactory struct{}

func (usersPostContentFactory) ParseCustomizedContent(info map[string]interface{}) CustomizedContent {
	content := new(UsersPostContent)
	content.LoadDictionary(&info)
	return content
}

func init() {
	CustomizedContentRegister(MonitorApp, MonitorMod, usersPostContentFactory{})
}
