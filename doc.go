// FILE: embedconf/doc.go

// Package embedconf resolves dotted field paths against a TOML (or JSON,
// or YAML) configuration document whose location is itself configurable,
// and returns the value as a strictly typed scalar. It is built for
// fixing values before normal runtime: code generation, build tooling,
// and program initialization that must fail loudly on a bad config.
//
// Features:
//   - Document discovery via environment override or a project manifest
//   - Dotted-path resolution (server.tls.cert) with full-path diagnostics
//   - Strict scalar coercion: bool, string, int64, float64 — no implicit
//     conversions
//   - Optional lookups that distinguish "field absent" from every other
//     failure
//   - Precise, layered errors: which file, which byte, which field, which
//     parser complaint
//   - No caching, no watching, no shared state: every resolution re-reads
//     the source
//
// Quick Start:
//
//	host, err := embedconf.String("server.host")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	port, ok, err := embedconf.LookupInt64("server.port")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !ok {
//	    port = 8080
//	}
//
// Discovery (highest priority first):
//  1. EMBEDCONF_PATH — used verbatim as the document path
//  2. EMBEDCONF_ROOT + package.toml — the manifest's
//     package.metadata.embedded-config.path field, joined onto the root
//
// Both variable names, the manifest name, and the manifest field are
// configurable through LocateOptions.
//
// The embedconf command under cmd/embedconf turns resolutions into
// generated Go constants, for use with go:generate.
package embedconf
