/*
 * Copyright 2023 The RuleGo Authors.
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

package json

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type step struct {
	Type       string                 `json:"type"`
	Expression string                 `json:"expression,omitempty"`
	Config     map[string]interface{} `json:"configuration,omitempty"`
}

func TestMarshal(t *testing.T) {
	v, err := Marshal(step{Type: "filter", Expression: "a < b && c > d"})
	require.Nil(t, err)
	assert.Equal(t, `{"type":"filter","expression":"a < b && c > d"}`, string(v))

	v, err = Marshal2(step{Type: "filter", Expression: "a < b"}, true)
	require.Nil(t, err)
	assert.Equal(t, `{"type":"filter","expression":"a \u003c b"}`, string(v))
}

func TestMarshalIndent(t *testing.T) {
	v, err := MarshalIndent(step{Type: "to"}, "  ")
	require.Nil(t, err)
	assert.Equal(t, "{\n  \"type\": \"to\"\n}", string(v))
}

func TestUnmarshal(t *testing.T) {
	var s step
	require.Nil(t, Unmarshal([]byte(`{"type":"sample","configuration":{"messageFrequency":9007199254740993}}`), &s))
	assert.Equal(t, "sample", s.Type)
	n, ok := s.Config["messageFrequency"].(json.Number)
	require.True(t, ok)
	assert.Equal(t, "9007199254740993", n.String())
	assert.NotNil(t, Unmarshal([]byte("{"), &s))
}
