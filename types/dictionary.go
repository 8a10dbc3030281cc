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
package types

import "time"

func CopyMap(origin map[string]interface{}) map[string]interface{} {
	clone := make(map[string]interface{})
	for key, value := range origin {
		clone[key] = value
	}
	return clone
}

type Dictionary struct {
	dictionary *map[string]interface{}
}

func (dict *Dictionary) LoadDictionary(dictionary *map[string]interface{}) *Dictionary {
	dict.dictionary = dictionary
	return dict
}

func (dict *Dictionary) InitDictionary() *Dictionary {
	dictionary := make(map[string]interface{})
	return dict.LoadDictionary(&dictionary)
}

func (dict *Dictionary) CopyMap() map[string]interface{} {
	return CopyMap(dict.Map())
}

// Map returns the backing map directly, with no copy.
func (dict *Dictionary) Map() map[string]interface{} {
	return *dict.dictionary
}

// GetMap returns the backing map, cloned when clone is true. This satisfies
// the mkm-go Map interface's accessor shape used throughout protocol/*.go.
func (dict *Dictionary) GetMap(clone bool) map[string]interface{} {
	if clone {
		return dict.CopyMap()
	}
	return dict.Map()
}

func (dict *Dictionary) Get(key string) interface{} {
	return (*dict.dictionary)[key]
}

func (dict *Dictionary) Set(key string, value interface{}) {
	if value == nil {
		delete(*dict.dictionary, key)
	} else {
		(*dict.dictionary)[key] = value
	}
}

// GetString reads a string field, returning "" if absent or of another type.
func (dict *Dictionary) GetString(key string) string {
	value := dict.Get(key)
	if value == nil {
		return ""
	}
	text, ok := value.(string)
	if !ok {
		return ""
	}
	return text
}

// GetInt64 reads a numeric field, accepting the JSON-decoded float64 shape
// as well as the in-process int64 shape.
func (dict *Dictionary) GetInt64(key string) int64 {
	switch value := dict.Get(key).(type) {
	case int64:
		return value
	case int:
		return int64(value)
	case float64:
		return int64(value)
	default:
		return 0
	}
}

// GetTime reads a unix-seconds field into a time.Time, zero if absent.
func (dict *Dictionary) GetTime(key string) time.Time {
	stamp := dict.GetInt64(key)
	if stamp == 0 {
		return time.Time{}
	}
	return time.Unix(stamp, 0)
}

// SetTime writes a time.Time field as unix seconds, clearing the field when zero.
func (dict *Dictionary) SetTime(key string, when time.Time) {
	if when.IsZero() {
		dict.Set(key, nil)
	} else {
		dict.Set(key, when.Unix())
	}
}

// GetStringMap reads a nested string-keyed map, nil if absent or of another type.
func (dict *Dictionary) GetStringMap(key string) map[string]interface{} {
	value := dict.Get(key)
	if value == nil {
		return nil
	}
	switch m := value.(type) {
	case map[string]interface{}:
		return m
	default:
		return nil
	}
}

// GetStringSlice reads a []string field tolerating a []interface{} decode shape.
func (dict *Dictionary) GetStringSlice(key string) []string {
	value := dict.Get(key)
	if value == nil {
		return nil
	}
	switch seq := value.(type) {
	case []string:
		return seq
	case []interface{}:
		out := make([]string, 0, len(seq))
		for _, item := range seq {
			if text, ok := item.(string); ok {
				out = append(out, text)
			}
		}
		return out
	default:
		return nil
	}
}
