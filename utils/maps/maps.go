package maps

import (
	"reflect"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/rulego/routedsl/api/types"
	"github.com/rulego/routedsl/utils/cast"
)

var (
	optionalBoolType = reflect.TypeOf(types.Unset)
	durationType     = reflect.TypeOf(time.Duration(0))
)

// Map2Struct Decode takes an input structure and uses reflection to translate it to
// the output structure. output must be a pointer to a map or struct.
// Besides the mapstructure defaults it decodes types.OptionalBool from booleans or
// "true"/"false" and time.Duration from milliseconds or duration strings.
func Map2Struct(input interface{}, output interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(optionalBoolHook, durationHook),
		Result:     output,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(input)
}

func optionalBoolHook(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	if to != optionalBoolType || from == optionalBoolType {
		return data, nil
	}
	return cast.ToOptionalBoolE(data)
}

func durationHook(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	if to != durationType || from == durationType {
		return data, nil
	}
	return cast.ToDurationE(data)
}
