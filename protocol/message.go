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
package protocol

import (
	. "github.com/dimchat/mkm-go/protocol"
	. "github.com/dimchat/mkm-go/types"
	"time"
)

// Message is the common envelope-carrying surface shared by InstantMessage,
// SecureMessage and ReliableMessage (each adds its own payload shape on top
// of Envelope; see instant.go/secure.go/reliable.go).
//
//	data format: {
//	    //-- envelope
//	    sender   : "moki@xxx",
//	    receiver : "hulk@yyy",
//	    time     : 123,
//	    //-- body, see concrete message kind
//	}
type Message interface {
	Map

	Envelope() Envelope

	Sender() ID
	Receiver() ID
	Time() time.Time

	Group() ID
	Type() ContentType
}

func MessageGetSender(msg map[string]interface{}) ID {
	return EnvelopeGetSender(msg)
}

func MessageGetReceiver(msg map[string]interface{}) ID {
	return EnvelopeGetReceiver(msg)
}
