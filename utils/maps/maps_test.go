package maps

import (
	"testing"
	"time"

	"github.com/rulego/routedsl/api/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleConfig struct {
	Uri                string
	Copy               types.OptionalBool
	DoWhile            types.OptionalBool
	Period             time.Duration
	Timeout            time.Duration
	MessageFrequency   int64
	FallbackViaNetwork types.OptionalBool
}

func TestMap2Struct(t *testing.T) {
	var config sampleConfig
	err := Map2Struct(map[string]interface{}{
		"uri":              "mock:a",
		"copy":             true,
		"doWhile":          "false",
		"period":           float64(1500),
		"timeout":          "2s",
		"messageFrequency": 10,
	}, &config)
	require.Nil(t, err)
	assert.Equal(t, "mock:a", config.Uri)
	assert.Equal(t, types.True, config.Copy)
	assert.Equal(t, types.False, config.DoWhile)
	assert.Equal(t, types.Unset, config.FallbackViaNetwork)
	assert.Equal(t, 1500*time.Millisecond, config.Period)
	assert.Equal(t, 2*time.Second, config.Timeout)
	assert.EqualValues(t, 10, config.MessageFrequency)

	err = Map2Struct(map[string]interface{}{"copy": "sometimes"}, &config)
	assert.NotNil(t, err)
}
