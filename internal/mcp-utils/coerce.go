package mcputils

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
)

// ArgumentGetter is an interface for getting arguments from a request
type ArgumentGetter interface {
	GetArguments() map[string]interface{}
}

// CoerceBindArguments binds MCP request arguments to a target struct using its
// json tags. Some clients send every parameter as a string, so "true"/"false"
// are accepted for bool fields and numbers for string fields.
func CoerceBindArguments[T any](request ArgumentGetter, target *T) error {
	rawArgs := request.GetArguments()
	if rawArgs == nil {
		return fmt.Errorf("invalid arguments format")
	}

	boolStringHook := func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if f.Kind() != reflect.String || t.Kind() != reflect.Bool {
			return data, nil
		}
		switch strings.ToLower(strings.TrimSpace(data.(string))) {
		case "true", "1", "yes":
			return true, nil
		case "false", "0", "no", "":
			return false, nil
		}
		return nil, fmt.Errorf("cannot parse %q as boolean", data)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		DecodeHook:       boolStringHook,
		Result:           target,
		TagName:          "json",
	})
	if err != nil {
		return err
	}

	return decoder.Decode(rawArgs)
}

// RequireArguments returns an error naming the first key that is absent.
// Present but empty strings are accepted.
func RequireArguments(request ArgumentGetter, keys ...string) error {
	args := request.GetArguments()
	for _, key := range keys {
		if _, ok := args[key]; !ok {
			return fmt.Errorf("%s parameter is required", key)
		}
	}
	return nil
}
