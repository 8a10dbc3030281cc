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

/**
 *  Forward Content
 *  ~~~~~~~~~~~~~~~
 *  A top-secret message (or several) forwarded by proxy, carried verbatim
 *  as already-packed ReliableMessage(s) for the ForwardContentProcessor to
 *  unwrap and redirect.
 *
 *  data format: {
 *      'type' : 0xFF,
 *      'sn'   : 0,
 *
 *      'forward' : {...},        // one ReliableMessage
 *      'secrets' : [{...}, ...]  // or several
 *  }
 */
type ForwardContent interface {
	Content

	// Secrets returns every forwarded message, whether the wire form used
	// the singular 'forward' field or the plural 'secrets' array.
	Secrets() []ReliableMessage
}

func ForwardContentGetSecrets(content map[string]interface{}) []ReliableMessage {
	if array, ok := content["secrets"]; ok {
		return ReliableMessageConvert(array)
	}
	if single := content["forward"]; single != nil {
		msg := ReliableMessageParse(single)
		if msg == nil {
			return nil
		}
		return []ReliableMessage{msg}
	}
	return nil
}
