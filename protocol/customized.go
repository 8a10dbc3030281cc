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

// CUSTOMIZED marks a content as application-defined: the station and the
// generic dispatcher only look at 'app'/'mod'/'act', never at the payload.
const CUSTOMIZED ContentType = 0xCC

func init() {
	ContentTypeSetAlias(CUSTOMIZED, "CUSTOMIZED")
}

/**
 *  Customized Content
 *  ~~~~~~~~~~~~~~~~~~
 *  3rd-party defined message content, routed by (app, mod) instead of by
 *  message type alone.
 *
 *  data format: {
 *      'type' : 0xCC,
 *      'sn'   : 0,
 *
 *      'app'  : "chat.dim.group",  // application identifier
 *      'mod'  : "keys",            // module name within the app
 *      'act'  : "query",           // action name within the module
 *      //-- extra fields depend on (app, mod, act)
 *  }
 */
type CustomizedContent interface {
	Content

	// Application ID
	App() string

	// Module name
	Mod() string

	// Action name
	Act() string
}

func CustomizedContentGetApp(content map[string]interface{}) string {
	app, _ := content["app"].(string)
	return app
}

func CustomizedContentGetMod(content map[string]interface{}) string {
	mod, _ := content["mod"].(string)
	return mod
}

func CustomizedContentGetAct(content map[string]interface{}) string {
	act, _ := content["act"].(string)
	return act
}

// customizedKey is the (app, mod) pair used to key the second-level registry
// that lets a single CUSTOMIZED content type fan out to many handlers.
type customizedKey struct {
	app string
	mod string
}

/**
 *  Customized Content Factory
 *  ~~~~~~~~~~~~~~~~~~~~~~~~~~
 */
type CustomizedContentFactory interface {
	ParseCustomizedContent(content map[string]interface{}) CustomizedContent
}

var customizedFactories = make(map[customizedKey]CustomizedContentFactory)

// CustomizedContentRegister binds a factory to one (app, mod) pair. Several
// mod names can share the same app (e.g. "chat.dim.group" has "keys" and
// would gain others without touching the generic CUSTOMIZED dispatch).
func CustomizedContentRegister(app string, mod string, factory CustomizedContentFactory) {
	customizedFactories[customizedKey{app, mod}] = factory
}

func CustomizedContentGetFactory(app string, mod string) CustomizedContentFactory {
	return customizedFactories[customizedKey{app, mod}]
}

// customizedContentFactory is installed as the CUSTOMIZED ContentFactory; it
// re-dispatches on (app, mod) to whatever was registered for that pair, and
// falls back to a bare BaseContent-shaped parse when nothing matches.
type customizedContentFactory struct {
	fallback ContentFactory
}

func (f *customizedContentFactory) ParseContent(content map[string]interface{}) Content {
	app := CustomizedContentGetApp(content)
	mod := CustomizedContentGetMod(content)
	factory := CustomizedContentGetFactory(app, mod)
	if factory == nil {
		return f.fallback.ParseContent(content)
	}
	return factory.ParseCustomizedContent(content)
}

// RegisterCustomizedDispatch installs the (app,mod)-aware dispatcher as the
// handler for ContentType CUSTOMIZED; fallback is used when no (app, mod)
// factory is registered for an incoming customized content.
func RegisterCustomizedDispatch(fallback ContentFactory) {
	ContentRegister(CUSTOMIZED, &customizedContentFactory{fallback: fallback})
}
