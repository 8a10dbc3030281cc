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
package protocol

import (
	. "github.com/dimchat/mkm-go/protocol"
)

// MonitorApp/MonitorMod name the "chat.dim.monitor"/"users" (app, mod) pair
// the Service surface uses to report newly-seen users ("post" action).
const (
	MonitorApp = "chat.dim.monitor"
	MonitorMod = "users"
)

const MonitorActPost = "post"

/**
 *  Users Post Content
 *  ~~~~~~~~~~~~~~~~~~
 *  Reports one or more users to a monitor bot.
 *
 *  data format: {
 *      'type' : 0xCC,
 *      'sn'   : 0,
 *
 *      'app'  : "chat.dim.monitor",
 *      'mod'  : "users",
 *      'act'  : "post",
 *
 *      'users' : ["{userID}", ...],
 *      'time'  : 123
 *  }
 */
type UsersPostContent interface {
	CustomizedContent

	Users() []ID
}

func UsersPostContentGetUsers(content map[string]interface{}) []ID {
	raw, ok := content["users"].([]interface{})
	if !ok {
		return nil
	}
	users := make([]ID, 0, len(raw))
	for _, item := range raw {
		if id := IDParse(item); id != nil {
			users = append(users, id)
		}
	}
	return users
}
