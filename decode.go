// FILE: embedconf/decode.go
package embedconf

import (
	"fmt"
	"reflect"
	"time"

	"github.com/mitchellh/mapstructure"
)

// Decode unmarshals the subtree at field into target, which must be a
// non-nil pointer. An empty field decodes the whole document. This is a
// convenience for tooling built on top of the engine (the generator CLI
// reads its own manifest this way); the scalar accessors remain the only
// supported path for values destined for generated output.
func (d *Document) Decode(field string, target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("decode target must be non-nil pointer, got %T", target)
	}

	section := any(d.root)
	if field != "" {
		val, err := d.Resolve(field)
		if err != nil {
			return err
		}
		section = val
	}

	sectionMap, ok := section.(map[string]any)
	if !ok {
		return fmt.Errorf("%w: field %q is %s, not table", ErrUnsupportedType, field, valueKind(section))
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "toml",
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToTimeHookFunc(time.RFC3339),
		),
	})
	if err != nil {
		return fmt.Errorf("decoder creation failed: %w", err)
	}

	if err := decoder.Decode(sectionMap); err != nil {
		return fmt.Errorf("decode failed for field %q: %w", field, err)
	}

	return nil
}
