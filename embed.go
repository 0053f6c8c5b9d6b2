// FILE: embedconf/embed.go
package embedconf

import "errors"

// Resolver composes discovery, loading, and field resolution into single
// calls. Each call performs the full pipeline from scratch: the document
// path is re-discovered and the file re-read and re-parsed, so repeated
// resolutions always observe current environment and file state. There is
// no shared state between calls and a Resolver is safe to reuse.
type Resolver struct {
	opts LocateOptions
}

// NewResolver returns a Resolver using DefaultLocateOptions.
func NewResolver() *Resolver {
	return &Resolver{opts: DefaultLocateOptions()}
}

// NewResolverWithOptions returns a Resolver with custom discovery options.
func NewResolverWithOptions(opts LocateOptions) *Resolver {
	return &Resolver{opts: opts}
}

// load runs discovery and parses the discovered document.
func (r *Resolver) load() (*Document, error) {
	path, err := Locate(r.opts)
	if err != nil {
		return nil, err
	}
	return LoadDocument(path)
}

// Document discovers, loads, and returns the configuration document.
func (r *Resolver) Document() (*Document, error) {
	return r.load()
}

// String resolves field from the discovered document as a string.
func (r *Resolver) String(field string) (string, error) {
	doc, err := r.load()
	if err != nil {
		return "", err
	}
	return doc.String(field)
}

// Int64 resolves field from the discovered document as an integer.
func (r *Resolver) Int64(field string) (int64, error) {
	doc, err := r.load()
	if err != nil {
		return 0, err
	}
	return doc.Int64(field)
}

// Float64 resolves field from the discovered document as a float.
func (r *Resolver) Float64(field string) (float64, error) {
	doc, err := r.load()
	if err != nil {
		return 0, err
	}
	return doc.Float64(field)
}

// Bool resolves field from the discovered document as a boolean.
func (r *Resolver) Bool(field string) (bool, error) {
	doc, err := r.load()
	if err != nil {
		return false, err
	}
	return doc.Bool(field)
}

// Scalar resolves field from the discovered document as any scalar kind.
func (r *Resolver) Scalar(field string) (any, error) {
	doc, err := r.load()
	if err != nil {
		return nil, err
	}
	return doc.Scalar(field)
}

// The Lookup variants treat a missing field as absence rather than
// failure: they return found=false with a nil error only when the field
// does not exist in the document. Every other failure class (discovery,
// read, encoding, parse, wrong value type) is still an error.

// LookupString is the optional variant of String.
func (r *Resolver) LookupString(field string) (string, bool, error) {
	doc, err := r.load()
	if err != nil {
		return "", false, err
	}
	val, err := doc.String(field)
	if err != nil {
		if errors.Is(err, ErrMissingField) {
			return "", false, nil
		}
		return "", false, err
	}
	return val, true, nil
}

// LookupInt64 is the optional variant of Int64.
func (r *Resolver) LookupInt64(field string) (int64, bool, error) {
	doc, err := r.load()
	if err != nil {
		return 0, false, err
	}
	val, err := doc.Int64(field)
	if err != nil {
		if errors.Is(err, ErrMissingField) {
			return 0, false, nil
		}
		return 0, false, err
	}
	return val, true, nil
}

// LookupFloat64 is the optional variant of Float64.
func (r *Resolver) LookupFloat64(field string) (float64, bool, error) {
	doc, err := r.load()
	if err != nil {
		return 0, false, err
	}
	val, err := doc.Float64(field)
	if err != nil {
		if errors.Is(err, ErrMissingField) {
			return 0, false, nil
		}
		return 0, false, err
	}
	return val, true, nil
}

// LookupBool is the optional variant of Bool.
func (r *Resolver) LookupBool(field string) (bool, bool, error) {
	doc, err := r.load()
	if err != nil {
		return false, false, err
	}
	val, err := doc.Bool(field)
	if err != nil {
		if errors.Is(err, ErrMissingField) {
			return false, false, nil
		}
		return false, false, err
	}
	return val, true, nil
}
