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

// GroupKeysApp/GroupKeysMod name the "chat.dim.group"/"keys" (app, mod) pair
// carrying the group key-exchange sub-protocol (query/update/request/respond).
const (
	GroupKeysApp = "chat.dim.group"
	GroupKeysMod = "keys"
)

const (
	GroupKeysActQuery   = "query"
	GroupKeysActUpdate  = "update"
	GroupKeysActRequest = "request"
	GroupKeysActRespond = "respond"
)

/**
 *  Group Keys Content
 *  ~~~~~~~~~~~~~~~~~~
 *  Carries a WrappedKeyTable for one group, keyed by sender, across the
 *  query/update/request/respond actions of the key-exchange sub-protocol.
 *
 *  data format: {
 *      'type' : 0xCC,
 *      'sn'   : 0,
 *
 *      'app'  : "chat.dim.group",
 *      'mod'  : "keys",
 *      'act'  : "update",        // query | update | request | respond
 *
 *      'group'   : "{GroupID}",
 *      'from'    : "{senderID}", // whose symmetric key this table wraps
 *      'keys'    : {
 *          "digest" : "...",     // hash of the symmetric key
 *          "{memberID}" : "...", // base64(asymmetric_encrypt(key, member.PK))
 *      },
 *      'members' : ["{memberID}", ...],  // for 'query'/'request'
 *      'time'    : 123
 *  }
 */
type GroupKeysContent interface {
	CustomizedContent

	// Sender whose key table this is
	From() ID

	// wrapped symmetric keys, member ID (string) -> base64 ciphertext,
	// plus the reserved "digest" entry
	Keys() map[string]string

	// digest of the plaintext key, used to decide merge vs replace
	Digest() string

	// members named in a query/request (nil for update/respond)
	Members() []ID

	// CorrelationID identifies a 'query' in the bot's logs so it can be
	// matched against the sender's reply (empty for update/respond).
	CorrelationID() string
}

func GroupKeysContentGetFrom(content map[string]interface{}) ID {
	return IDParse(content["from"])
}

func GroupKeysContentGetKeys(content map[string]interface{}) map[string]string {
	raw, ok := content["keys"].(map[string]interface{})
	if !ok {
		return nil
	}
	keys := make(map[string]string, len(raw))
	for k, v := range raw {
		if text, ok := v.(string); ok {
			keys[k] = text
		}
	}
	return keys
}

func GroupKeysContentGetDigest(content map[string]interface{}) string {
	keys := GroupKeysContentGetKeys(content)
	if keys == nil {
		return ""
	}
	return keys["digest"]
}

func GroupKeysContentGetCorrelationID(content map[string]interface{}) string {
	cid, _ := content["cid"].(string)
	return cid
}

func GroupKeysContentGetMembers(content map[string]interface{}) []ID {
	raw, ok := content["members"].([]interface{})
	if !ok {
		return nil
	}
	members := make([]ID, 0, len(raw))
	for _, item := range raw {
		if id := IDParse(item); id != nil {
			members = append(members, id)
		}
	}
	return members
}
