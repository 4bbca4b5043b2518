package proto

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// protoLexer tokenizes IDL source. Line and block comments and
// whitespace are insignificant between any two tokens and are elided
// before parsing.
var protoLexer = lexer.MustSimple([]lexer.SimpleRule{
	{"Whitespace", `[ \t\r\n]+`},
	{"Comment", `//[^\n]*|/\*([^*]|\*+[^*/])*\*+/`},
	{"String", `"(\\.|[^"\\])*"|'(\\.|[^'\\])*'`},
	{"Number", `-?(0[xX][0-9a-fA-F]+|\d+(\.\d+)?([eE][+-]?\d+)?)`},
	{"Ident", `[a-zA-Z_][a-zA-Z0-9_]*`},
	{"Punct", `[{}\[\]=;,.]`},
})

// fileParser is built once from the declarative grammar below.
var fileParser = participle.MustBuild[File](
	participle.Lexer(protoLexer),
	participle.Elide("Whitespace", "Comment"),
	participle.UseLookahead(2),
)

// File is the concrete syntax tree for a single IDL source file.
type File struct {
	Pos     lexer.Position
	Entries []*Entry `parser:"@@*"`
}

// Entry is one top-level statement.
type Entry struct {
	Syntax  *Syntax  `parser:"  @@"`
	Package *Package `parser:"| @@"`
	Option  *Option  `parser:"| @@"`
	Message *Message `parser:"| @@"`
	Enum    *Enum    `parser:"| @@"`
}

// Syntax is a syntax declaration. The value is accepted and carries no
// downstream meaning.
type Syntax struct {
	Value string `parser:"'syntax' '=' @String ';'"`
}

// Package is a package statement with a dotted name.
type Package struct {
	Pos  lexer.Position
	Name string `parser:"'package' @Ident ( @'.' @Ident )* ';'"`
}

// Option is a file-level or body-level option statement. Options are
// accepted and ignored downstream.
type Option struct {
	Name  string   `parser:"'option' @Ident ( @'.' @Ident )* '='"`
	Value *Literal `parser:"@@ ';'"`
}

// Literal is an option value: a string, a number, or a bare identifier
// path such as true or SPEED.
type Literal struct {
	Str    *string `parser:"  @String"`
	Number *string `parser:"| @Number"`
	Ident  *string `parser:"| @Ident ( @'.' @Ident )*"`
}

// Message is a message declaration. Entries keep source order.
type Message struct {
	Pos     lexer.Position
	Name    string          `parser:"'message' @Ident"`
	Entries []*MessageEntry `parser:"'{' @@* '}'"`
}

// MessageEntry is one statement inside a message body.
type MessageEntry struct {
	Message *Message `parser:"  @@"`
	Enum    *Enum    `parser:"| @@"`
	Oneof   *Oneof   `parser:"| @@"`
	Option  *Option  `parser:"| @@"`
	Field   *Field   `parser:"| @@"`
}

// Field is a field declaration. The modifier keyword is recorded but
// has no downstream meaning: a repeated field is modeled identically
// to a singular field of the same element type.
type Field struct {
	Pos      lexer.Position
	Modifier string         `parser:"@('repeated' | 'optional' | 'required')?"`
	Type     *TypeRef       `parser:"@@"`
	Name     string         `parser:"@Ident"`
	Tag      string         `parser:"'=' @Number"`
	Options  []*FieldOption `parser:"( '[' @@ ( ',' @@ )* ']' )? ';'"`
}

// TypeRef is a written field type: a scalar keyword or a possibly
// dot-qualified identifier path. A leading '.' marks an explicitly
// qualified reference.
type TypeRef struct {
	Pos     lexer.Position
	Leading bool   `parser:"@'.'?"`
	Path    string `parser:"@Ident ( @'.' @Ident )*"`
}

// FieldOption is a bracketed option on a field or enum value; accepted
// and ignored.
type FieldOption struct {
	Name  string   `parser:"@Ident ( @'.' @Ident )* '='"`
	Value *Literal `parser:"@@"`
}

// Oneof is a union-like grouping of fields. The grouping itself has no
// semantic representation: its fields belong to the owning message.
type Oneof struct {
	Pos    lexer.Position
	Name   string   `parser:"'oneof' @Ident"`
	Fields []*Field `parser:"'{' @@* '}'"`
}

// Enum is an enum declaration. A trailing ';' after the closing brace
// is tolerated.
type Enum struct {
	Pos     lexer.Position
	Name    string       `parser:"'enum' @Ident"`
	Entries []*EnumEntry `parser:"'{' @@* '}' ';'?"`
}

// EnumEntry is one statement inside an enum body.
type EnumEntry struct {
	Option *Option    `parser:"  @@"`
	Value  *EnumValue `parser:"| @@"`
}

// EnumValue is a named enum member with an integer literal.
type EnumValue struct {
	Pos     lexer.Position
	Name    string         `parser:"@Ident '='"`
	Number  string         `parser:"@Number"`
	Options []*FieldOption `parser:"( '[' @@ ( ',' @@ )* ']' )? ';'"`
}
