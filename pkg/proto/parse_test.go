package proto

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Basic(t *testing.T) {
	content := `syntax = "proto3";

package com.example;

message Order {
  int64 id = 1;
  string customer_name = 2;
}`

	file, err := Parse("order.proto", content)
	require.NoError(t, err)
	require.NotNil(t, file)
	require.Len(t, file.Entries, 3)

	require.NotNil(t, file.Entries[0].Syntax)
	assert.Equal(t, `"proto3"`, file.Entries[0].Syntax.Value)

	require.NotNil(t, file.Entries[1].Package)
	assert.Equal(t, "com.example", file.Entries[1].Package.Name)

	msg := file.Entries[2].Message
	require.NotNil(t, msg)
	assert.Equal(t, "Order", msg.Name)
	require.Len(t, msg.Entries, 2)

	first := msg.Entries[0].Field
	require.NotNil(t, first)
	assert.Equal(t, "id", first.Name)
	assert.Equal(t, "int64", first.Type.Path)
	assert.False(t, first.Type.Leading)
	assert.Equal(t, "1", first.Tag)

	second := msg.Entries[1].Field
	require.NotNil(t, second)
	assert.Equal(t, "customer_name", second.Name)
	assert.Equal(t, "string", second.Type.Path)
	assert.Equal(t, "2", second.Tag)
}

func TestParse_Modifiers(t *testing.T) {
	content := `message Bag {
  repeated string tags = 1;
  optional int32 weight = 2;
  required bool sealed = 3;
}`

	file, err := Parse("bag.proto", content)
	require.NoError(t, err)

	msg := file.Entries[0].Message
	require.NotNil(t, msg)
	require.Len(t, msg.Entries, 3)
	assert.Equal(t, "repeated", msg.Entries[0].Field.Modifier)
	assert.Equal(t, "optional", msg.Entries[1].Field.Modifier)
	assert.Equal(t, "required", msg.Entries[2].Field.Modifier)
}

func TestParse_QualifiedTypes(t *testing.T) {
	content := `message Order {
  com.example.Address shipping = 1;
  .com.example.Address billing = 2;
}`

	file, err := Parse("order.proto", content)
	require.NoError(t, err)

	msg := file.Entries[0].Message
	require.NotNil(t, msg)
	require.Len(t, msg.Entries, 2)

	shipping := msg.Entries[0].Field
	assert.Equal(t, "com.example.Address", shipping.Type.Path)
	assert.False(t, shipping.Type.Leading)

	billing := msg.Entries[1].Field
	assert.Equal(t, "com.example.Address", billing.Type.Path)
	assert.True(t, billing.Type.Leading)
}

func TestParse_Oneof(t *testing.T) {
	content := `message Payment {
  int64 order_id = 1;
  oneof method {
    string card_token = 2;
    string invoice_id = 3;
  }
  bool settled = 4;
}`

	file, err := Parse("payment.proto", content)
	require.NoError(t, err)

	msg := file.Entries[0].Message
	require.NotNil(t, msg)
	require.Len(t, msg.Entries, 3)

	oneof := msg.Entries[1].Oneof
	require.NotNil(t, oneof)
	assert.Equal(t, "method", oneof.Name)
	require.Len(t, oneof.Fields, 2)
	assert.Equal(t, "card_token", oneof.Fields[0].Name)
	assert.Equal(t, "invoice_id", oneof.Fields[1].Name)
}

func TestParse_NestedDeclarations(t *testing.T) {
	content := `message Customer {
  string name = 1;
  message Address {
    string street = 1;
  }
  enum Tier {
    BASIC = 0;
    GOLD = 1;
  }
  Address home = 2;
}`

	file, err := Parse("customer.proto", content)
	require.NoError(t, err)

	msg := file.Entries[0].Message
	require.NotNil(t, msg)
	require.Len(t, msg.Entries, 4)
	assert.NotNil(t, msg.Entries[0].Field)
	require.NotNil(t, msg.Entries[1].Message)
	assert.Equal(t, "Address", msg.Entries[1].Message.Name)
	require.NotNil(t, msg.Entries[2].Enum)
	assert.Equal(t, "Tier", msg.Entries[2].Enum.Name)
	assert.NotNil(t, msg.Entries[3].Field)
}

func TestParse_Enum(t *testing.T) {
	content := `enum Status {
  option allow_alias = true;
  UNKNOWN = 0;
  ACTIVE = 1;
  RETIRED = -1;
}`

	file, err := Parse("status.proto", content)
	require.NoError(t, err)

	enum := file.Entries[0].Enum
	require.NotNil(t, enum)
	assert.Equal(t, "Status", enum.Name)
	require.Len(t, enum.Entries, 4)

	assert.NotNil(t, enum.Entries[0].Option)
	require.NotNil(t, enum.Entries[1].Value)
	assert.Equal(t, "UNKNOWN", enum.Entries[1].Value.Name)
	assert.Equal(t, "0", enum.Entries[1].Value.Number)
	require.NotNil(t, enum.Entries[3].Value)
	assert.Equal(t, "-1", enum.Entries[3].Value.Number)
}

func TestParse_EnumTrailingSemicolon(t *testing.T) {
	content := `enum Status {
  UNKNOWN = 0;
};`

	_, err := Parse("status.proto", content)
	require.NoError(t, err)
}

func TestParse_Options(t *testing.T) {
	content := `option java_package = "com.example.gen";
option optimize_for = SPEED;

message Flag {
  bool enabled = 1 [deprecated = true, packed = false];
}

enum Level {
  LOW = 0 [legacy_name = "low"];
}`

	file, err := Parse("options.proto", content)
	require.NoError(t, err)
	require.Len(t, file.Entries, 4)

	first := file.Entries[0].Option
	require.NotNil(t, first)
	assert.Equal(t, "java_package", first.Name)
	require.NotNil(t, first.Value.Str)
	assert.Equal(t, `"com.example.gen"`, *first.Value.Str)

	second := file.Entries[1].Option
	require.NotNil(t, second)
	require.NotNil(t, second.Value.Ident)
	assert.Equal(t, "SPEED", *second.Value.Ident)

	field := file.Entries[2].Message.Entries[0].Field
	require.NotNil(t, field)
	require.Len(t, field.Options, 2)
	assert.Equal(t, "deprecated", field.Options[0].Name)

	value := file.Entries[3].Enum.Entries[0].Value
	require.NotNil(t, value)
	require.Len(t, value.Options, 1)
	assert.Equal(t, "legacy_name", value.Options[0].Name)
}

func TestParse_Comments(t *testing.T) {
	content := `// Order schema.
package com.example; // trailing comment

/* block
   comment */
message Order {
  /* inline */ int64 id = 1;
}`

	file, err := Parse("order.proto", content)
	require.NoError(t, err)
	require.Len(t, file.Entries, 2)
	assert.NotNil(t, file.Entries[0].Package)
	assert.NotNil(t, file.Entries[1].Message)
}

func TestParse_Empty(t *testing.T) {
	file, err := Parse("empty.proto", "")
	require.NoError(t, err)
	require.NotNil(t, file)
	assert.Empty(t, file.Entries)
}

func TestParse_SyntaxErrorPosition(t *testing.T) {
	content := `message Order {
  int64 id = ;
}`

	_, err := Parse("order.proto", content)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSyntax)

	var serr *SyntaxError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "order.proto", serr.Path)
	assert.Equal(t, 2, serr.Line)
	assert.NotEmpty(t, serr.Detail)
}

func TestParse_UnknownCharacter(t *testing.T) {
	_, err := Parse("bad.proto", "message M { map<string, int32> kv = 1; }")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSyntax)
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "order.proto")
	content := `package com.example;

message Order {
  int64 id = 1;
}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	file, err := ParseFile(path)
	require.NoError(t, err)
	require.Len(t, file.Entries, 2)
}

func TestParseFile_Missing(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "missing.proto"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRead)
	assert.ErrorIs(t, err, os.ErrNotExist)

	var rerr *ReadError
	require.True(t, errors.As(err, &rerr))
	assert.Contains(t, rerr.Error(), "missing.proto")
}
