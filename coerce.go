// FILE: embedconf/coerce.go
package embedconf

import "fmt"

// The typed accessors below resolve a dotted field path and require the
// value to already hold the requested representation. There is no implicit
// conversion: an integer is never widened to a float, a boolean is never
// stringified. Values destined for a caller's compiled output must carry
// their declared type exactly; a lenient accessor would paper over a
// config mistake until runtime.

// String resolves field and returns its value, which must be a string.
func (d *Document) String(field string) (string, error) {
	val, err := d.Resolve(field)
	if err != nil {
		return "", err
	}
	s, ok := val.(string)
	if !ok {
		return "", coercionError(field, val, "string")
	}
	return s, nil
}

// Int64 resolves field and returns its value, which must be an integer.
func (d *Document) Int64(field string) (int64, error) {
	val, err := d.Resolve(field)
	if err != nil {
		return 0, err
	}
	i, ok := val.(int64)
	if !ok {
		return 0, coercionError(field, val, "integer")
	}
	return i, nil
}

// Float64 resolves field and returns its value, which must be a float.
func (d *Document) Float64(field string) (float64, error) {
	val, err := d.Resolve(field)
	if err != nil {
		return 0, err
	}
	f, ok := val.(float64)
	if !ok {
		return 0, coercionError(field, val, "float")
	}
	return f, nil
}

// Bool resolves field and returns its value, which must be a boolean.
func (d *Document) Bool(field string) (bool, error) {
	val, err := d.Resolve(field)
	if err != nil {
		return false, err
	}
	b, ok := val.(bool)
	if !ok {
		return false, coercionError(field, val, "boolean")
	}
	return b, nil
}

// Scalar resolves field and returns its value, which must be one of the
// four supported scalar kinds. Mappings, arrays, and nil are rejected.
func (d *Document) Scalar(field string) (any, error) {
	val, err := d.Resolve(field)
	if err != nil {
		return nil, err
	}
	switch val.(type) {
	case bool, string, int64, float64:
		return val, nil
	}
	return nil, coercionError(field, val, "scalar")
}

// coercionError builds the UnsupportedType diagnostic naming the field,
// the type it actually holds, and the type that was requested.
func coercionError(field string, val any, want string) error {
	return fmt.Errorf("%w: field %q is %s, not %s", ErrUnsupportedType, field, valueKind(val), want)
}

// valueKind names a document node's runtime type in config terms.
func valueKind(val any) string {
	switch val.(type) {
	case nil:
		return "nothing"
	case bool:
		return "boolean"
	case string:
		return "string"
	case int64:
		return "integer"
	case float64:
		return "float"
	case []any:
		return "array"
	case map[string]any:
		return "table"
	default:
		return fmt.Sprintf("%T", val)
	}
}
