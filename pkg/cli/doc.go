// Package cli provides the protopojo command-line interface.
//
// # Overview
//
// This package implements the `protopojo` CLI tool for developers to
// generate Java data classes from proto schema files, check schema
// syntax, and keep generated sources current while editing.
//
// # Commands
//
// generate: Generate Java classes from proto files
//
//	protopojo generate \
//		--dir ./proto \
//		--out ./generated
//
// Individual files can be named instead of a directory:
//
//	protopojo generate order.proto customer.proto
//
// check: Parse proto files and report syntax errors
//
//	protopojo check --dir ./proto
//
// watch: Regenerate whenever a proto file changes
//
//	protopojo watch \
//		--dir ./proto \
//		--out ./generated \
//		--delay 2s
//
// version: Print version information
//
//	protopojo version
//
// # Configuration
//
// Every command honors an optional protopojo.yaml manifest and
// PROTOPOJO_* environment variables:
//
//	export PROTOPOJO_OUTPUT_DIR="./generated"
//	# Or use --out flag
//
// Flags override both.
//
// # Related Packages
//
//   - pkg/proto: Parses proto files
//   - pkg/schema: Builds the flattened type model
//   - pkg/codegen: Renders and writes Java sources
package cli
