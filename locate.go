// FILE: embedconf/locate.go
package embedconf

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// LocateOptions configures how the configuration document is discovered.
type LocateOptions struct {
	// Environment variable supplying the document path directly.
	// When set non-empty its value is used verbatim and the manifest
	// is never consulted.
	EnvVar string

	// Environment variable naming the project root directory, used
	// when EnvVar is not set.
	RootVar string

	// Manifest file name, relative to the project root.
	Manifest string

	// Dotted field inside the manifest whose string value is the
	// document path relative to the project root.
	ManifestField string
}

// DefaultLocateOptions returns the standard discovery configuration.
func DefaultLocateOptions() LocateOptions {
	return LocateOptions{
		EnvVar:        "EMBEDCONF_PATH",
		RootVar:       "EMBEDCONF_ROOT",
		Manifest:      "package.toml",
		ManifestField: "package.metadata.embedded-config.path",
	}
}

// Locate determines the filesystem path of the configuration document.
//
// The override variable dominates: when set, its value is returned without
// touching the manifest. Otherwise the root variable must name a project
// directory whose manifest declares the document path; the declared path
// is joined onto the root. Exactly one of the two locations is ever used.
//
// Nothing is cached; every call repeats the full discovery.
func Locate(opts LocateOptions) (string, error) {
	if path := os.Getenv(opts.EnvVar); path != "" {
		return path, nil
	}

	root := os.Getenv(opts.RootVar)
	if root == "" {
		return "", fmt.Errorf("%w: neither %s nor %s is set",
			ErrLocationNotConfigured, opts.EnvVar, opts.RootVar)
	}

	manifest, err := LoadDocument(filepath.Join(root, opts.Manifest))
	if err != nil {
		return "", fmt.Errorf("loading manifest: %w", err)
	}

	val, err := manifest.Resolve(opts.ManifestField)
	if err != nil {
		if errors.Is(err, ErrMissingField) {
			return "", fmt.Errorf("%w: %s is not set and %s does not declare %s",
				ErrLocationNotConfigured, opts.EnvVar, opts.Manifest, opts.ManifestField)
		}
		return "", err
	}

	rel, ok := val.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s is %s", ErrInvalidLocationValue, opts.ManifestField, valueKind(val))
	}

	return filepath.Join(root, rel), nil
}
