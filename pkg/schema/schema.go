// Package schema defines the normalized model produced from a parsed
// source file. Nested declarations are lifted into a flat list of
// types with dot-qualified names; generators consume this model
// without touching syntax trees.
package schema

import "strings"

// ScalarKind identifies a built-in scalar field type.
type ScalarKind int

// Scalar kinds. ScalarNone marks a field whose type is a named
// reference rather than a scalar.
const (
	ScalarNone ScalarKind = iota
	ScalarDouble
	ScalarFloat
	ScalarInt32
	ScalarInt64
	ScalarUint32
	ScalarUint64
	ScalarSint32
	ScalarSint64
	ScalarFixed32
	ScalarFixed64
	ScalarSfixed32
	ScalarSfixed64
	ScalarBool
	ScalarString
	ScalarBytes
)

var scalarKinds = map[string]ScalarKind{
	"double":   ScalarDouble,
	"float":    ScalarFloat,
	"int32":    ScalarInt32,
	"int64":    ScalarInt64,
	"uint32":   ScalarUint32,
	"uint64":   ScalarUint64,
	"sint32":   ScalarSint32,
	"sint64":   ScalarSint64,
	"fixed32":  ScalarFixed32,
	"fixed64":  ScalarFixed64,
	"sfixed32": ScalarSfixed32,
	"sfixed64": ScalarSfixed64,
	"bool":     ScalarBool,
	"string":   ScalarString,
	"bytes":    ScalarBytes,
}

// ScalarOf reports the scalar kind named by a type keyword, if any.
func ScalarOf(name string) (ScalarKind, bool) {
	k, ok := scalarKinds[name]
	return k, ok
}

// FieldType is either a scalar or a reference to a named type. A
// reference is a dot-qualified name that is not checked against the
// declared types; generators resolve it structurally.
type FieldType struct {
	Scalar    ScalarKind
	Reference string
}

// IsScalar reports whether the type is a built-in scalar.
func (t FieldType) IsScalar() bool { return t.Scalar != ScalarNone }

// ScalarType returns a scalar field type.
func ScalarType(kind ScalarKind) FieldType { return FieldType{Scalar: kind} }

// ReferenceType returns a named reference field type.
func ReferenceType(name string) FieldType { return FieldType{Reference: name} }

// Field is a message field. The name is kept exactly as written.
type Field struct {
	Name string
	Type FieldType
	Tag  uint32
}

// EnumValue is a named enum member.
type EnumValue struct {
	Name   string
	Number int32
}

// TypeDecl is a declared type in the flattened model.
type TypeDecl interface {
	// QualifiedName is the dot-joined nesting path, without the
	// package.
	QualifiedName() string
	// SimpleName is the last segment of the qualified name.
	SimpleName() string
}

// Message is a message type. Fields keep source order, with fields
// from union groupings spliced in at the grouping's position.
type Message struct {
	Name   string
	Fields []Field
}

func (m *Message) QualifiedName() string { return m.Name }

func (m *Message) SimpleName() string { return simpleName(m.Name) }

// Enum is an enum type. Values keep source order.
type Enum struct {
	Name   string
	Values []EnumValue
}

func (e *Enum) QualifiedName() string { return e.Name }

func (e *Enum) SimpleName() string { return simpleName(e.Name) }

// Schema is the flattened model of one source file. Types holds every
// declaration at any nesting depth, children before the message that
// declares them.
type Schema struct {
	Package string
	Types   []TypeDecl
}

func simpleName(qualified string) string {
	if i := strings.LastIndex(qualified, "."); i >= 0 {
		return qualified[i+1:]
	}
	return qualified
}
