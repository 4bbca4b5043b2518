// Package codegen renders parsed schema files into Java data classes.
//
// # Overview
//
// This package implements the generation pipeline that transforms
// schema definitions (.proto files) into plain Java classes: one
// .java file per declared message or enum, nested under the schema
// package's directory path. Messages become mutable POJOs with a
// no-arg constructor and get/set accessors; enums become Java enums
// carrying their wire number.
//
// The pipeline has three stages:
//
//  1. Parse (pkg/proto): source text to concrete syntax tree
//  2. Build (pkg/schema): syntax tree to flattened type model
//  3. Render (this package): type model to Java source files
//
// Rendering is deterministic. The same source text always produces the
// same files with byte-identical content, which is what makes content
// hashing a sound cache key.
//
// # Basic Usage
//
//	generator := codegen.NewGenerator(nil)
//	result, err := generator.GenerateFile("order.proto")
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := codegen.WriteFiles("generated", result.Files); err != nil {
//		log.Fatal(err)
//	}
//
// Errors are read failures (*proto.ReadError) or grammar mismatches
// (*proto.SyntaxError); a file that parses always renders.
//
// # Caching
//
// The generator keeps an in-memory LRU of rendered output keyed by a
// SHA-256 hash of the source text, with a TTL. Watch sessions use it
// to skip files untouched since the last pass. Disable it with
// Config.EnableCache=false for one-shot batch runs.
package codegen
