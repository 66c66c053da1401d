/*
 * Copyright 2025 The RuleGo Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package types

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// OptionalBool is a three-state flag: unset, true or false. The zero value is unset.
// OptionalBool 三态布尔值：未设置、true、false。零值为未设置
type OptionalBool uint8

const (
	Unset OptionalBool = iota
	True
	False
)

// BoolOf converts b to a set OptionalBool.
func BoolOf(b bool) OptionalBool {
	if b {
		return True
	}
	return False
}

// ParseOptionalBool parses "true"/"false"; the empty string is Unset.
func ParseOptionalBool(s string) (OptionalBool, error) {
	if s == "" {
		return Unset, nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return Unset, err
	}
	return BoolOf(b), nil
}

// IsSet reports whether a value was explicitly given.
func (o OptionalBool) IsSet() bool {
	return o == True || o == False
}

// Get returns the value, or def when unset.
func (o OptionalBool) Get(def bool) bool {
	switch o {
	case True:
		return true
	case False:
		return false
	default:
		return def
	}
}

func (o OptionalBool) String() string {
	switch o {
	case True:
		return "true"
	case False:
		return "false"
	default:
		return ""
	}
}

// Ptr returns nil when unset, which is how the DSL omits the attribute.
func (o OptionalBool) Ptr() *bool {
	if !o.IsSet() {
		return nil
	}
	v := o == True
	return &v
}

// MarshalJSON encodes unset as null.
func (o OptionalBool) MarshalJSON() ([]byte, error) {
	if !o.IsSet() {
		return []byte("null"), nil
	}
	return json.Marshal(o == True)
}

// UnmarshalJSON accepts null, booleans and the strings "true"/"false".
func (o *OptionalBool) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch x := v.(type) {
	case nil:
		*o = Unset
	case bool:
		*o = BoolOf(x)
	case string:
		p, err := ParseOptionalBool(x)
		if err != nil {
			return err
		}
		*o = p
	default:
		return &json.UnsupportedValueError{Str: string(b)}
	}
	return nil
}

// MarshalYAML encodes unset as null.
func (o OptionalBool) MarshalYAML() (interface{}, error) {
	if !o.IsSet() {
		return nil, nil
	}
	return o == True, nil
}

// UnmarshalYAML accepts booleans and the strings "true"/"false".
func (o *OptionalBool) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var v interface{}
	if err := unmarshal(&v); err != nil {
		return err
	}
	switch x := v.(type) {
	case nil:
		*o = Unset
	case bool:
		*o = BoolOf(x)
	case string:
		p, err := ParseOptionalBool(x)
		if err != nil {
			return err
		}
		*o = p
	default:
		return &json.UnsupportedValueError{Str: strconv.Quote(fmt.Sprint(v))}
	}
	return nil
}
