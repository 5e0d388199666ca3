package liability

import (
	"reflect"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/mitchellh/mapstructure"
	"github.com/yosuke-furukawa/json5/encoding/json5"
)

// Apply returns a copy of doc with each "key=value" override applied.
//
// Only keys already present in doc can be set. The value is coerced to the
// type the key currently holds: numbers and booleans are parsed, lists and
// objects are read as JSON5, strings are taken verbatim. Every bad override
// is reported; doc itself is never modified.
func Apply(doc Document, overrides []string) (Document, error) {
	out := doc.Clone()
	var merr *multierror.Error

	for _, o := range overrides {
		key, raw, ok := strings.Cut(o, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			merr = multierror.Append(merr, &OverrideError{Key: key, Value: raw, Cause: ErrMalformedOverride})
			continue
		}

		current, exists := out[key]
		if !exists {
			merr = multierror.Append(merr, &OverrideError{Key: key, Value: raw, Cause: ErrUnknownKey})
			continue
		}

		v, err := coerce(current, raw)
		if err != nil {
			merr = multierror.Append(merr, &OverrideError{Key: key, Value: raw, Cause: err})
			continue
		}
		out[key] = v
	}

	if err := merr.ErrorOrNil(); err != nil {
		return nil, err
	}
	return out, nil
}

func coerce(current any, raw string) (any, error) {
	switch current.(type) {
	case nil, string:
		return raw, nil
	case []any, map[string]any:
		var v any
		if err := json5.Unmarshal([]byte(raw), &v); err != nil {
			return nil, err
		}
		if reflect.TypeOf(v) != reflect.TypeOf(current) {
			return nil, ErrTypeMismatch
		}
		return v, nil
	}

	target := reflect.New(reflect.TypeOf(current))
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           target.Interface(),
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(strings.TrimSpace(raw)); err != nil {
		return nil, ErrTypeMismatch
	}
	return target.Elem().Interface(), nil
}
