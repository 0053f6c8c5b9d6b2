// FILE: embedconf/resolve.go
package embedconf

import "strings"

// Resolve walks the document along a dot-separated field path and returns
// the value it reaches. Traversal is strictly left-to-right: every segment
// before the last must name a nested mapping. Key segments cannot contain
// literal dots; there is no escaping.
//
// A failed lookup at any depth returns a *MissingFieldError carrying the
// full requested path, so the caller's diagnostic always shows what was
// asked for rather than where the walk stopped.
//
// The returned value is a deep copy; the document is never mutated, and
// resolving the same path twice yields identical results.
func (d *Document) Resolve(field string) (any, error) {
	current := any(d.root)
	for _, segment := range strings.Split(field, ".") {
		node, ok := current.(map[string]any)
		if !ok {
			return nil, &MissingFieldError{Path: field}
		}
		child, exists := node[segment]
		if !exists {
			return nil, &MissingFieldError{Path: field}
		}
		current = child
	}
	return cloneValue(current), nil
}

// Has reports whether a dotted field path resolves to any value.
func (d *Document) Has(field string) bool {
	_, err := d.Resolve(field)
	return err == nil
}
