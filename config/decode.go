package config

import (
	"fmt"
	"reflect"

	"github.com/go-viper/mapstructure/v2"

	"github.com/moto-design/svggen/utils"
)

// TagName is the struct tag naming the config key of a field.
const TagName = "config"

// StrictNumberHookFunc returns a DecodeHookFunc that converts strings
// into uint and float64 fields with the same strict rules as the flags.
func StrictNumberHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String {
			return data, nil
		}
		switch t.Kind() {
		case reflect.Uint:
			return utils.ParseUnsigned(data.(string))
		case reflect.Float64:
			return utils.ParseFloat(data.(string))
		}
		return data, nil
	}
}

// Decode stores the params entries into target, a pointer to a struct of
// pointer fields tagged with their config key. Entries are decoded one at
// a time so a bad value is reported with its line. Keys with no matching
// field are returned for the caller to report.
func (f *File) Decode(target any) (unused []Entry, err error) {
	for _, e := range f.Params {
		var md mapstructure.Metadata
		dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			Metadata:   &md,
			Result:     target,
			TagName:    TagName,
			DecodeHook: StrictNumberHookFunc(),
		})
		if err != nil {
			return nil, err
		}
		if err := dec.Decode(map[string]any{e.Key: e.Value}); err != nil {
			return nil, &Error{
				File: f.Name,
				Line: e.Line,
				Msg:  fmt.Sprintf("bad value %q for %s", e.Value, e.Key),
				Err:  err,
			}
		}
		if len(md.Unused) > 0 {
			unused = append(unused, e)
		}
	}
	return unused, nil
}
