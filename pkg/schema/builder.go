package schema

import (
	"strings"

	"github.com/platinummonkey/protopojo/pkg/proto"
)

// Build flattens a syntax tree into a Schema. Only the first package
// statement takes effect. Fields missing a type, name or tag are
// dropped; everything else that parsed is kept.
func Build(file *proto.File) *Schema {
	s := &Schema{}
	havePackage := false
	for _, entry := range file.Entries {
		switch {
		case entry.Package != nil:
			if !havePackage {
				s.Package = entry.Package.Name
				havePackage = true
			}
		case entry.Message != nil:
			buildMessage(s, entry.Message, "")
		case entry.Enum != nil:
			buildEnum(s, entry.Enum, "")
		}
	}
	return s
}

func qualify(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + "." + name
}

// buildMessage lifts node and its nested declarations into s.Types.
// The message itself is appended after its children so that nested
// types always precede their container.
func buildMessage(s *Schema, node *proto.Message, parent string) {
	name := qualify(parent, node.Name)

	// Names nested directly in this message, before any fields are
	// resolved, so a field may refer to a nested type declared later
	// in the body.
	nested := make(map[string]bool)
	for _, entry := range node.Entries {
		switch {
		case entry.Message != nil:
			nested[entry.Message.Name] = true
		case entry.Enum != nil:
			nested[entry.Enum.Name] = true
		}
	}

	msg := &Message{Name: name}
	for _, entry := range node.Entries {
		switch {
		case entry.Field != nil:
			if f, ok := buildField(entry.Field, name, nested); ok {
				msg.Fields = append(msg.Fields, f)
			}
		case entry.Oneof != nil:
			for _, fn := range entry.Oneof.Fields {
				if f, ok := buildField(fn, name, nested); ok {
					msg.Fields = append(msg.Fields, f)
				}
			}
		case entry.Message != nil:
			buildMessage(s, entry.Message, name)
		case entry.Enum != nil:
			buildEnum(s, entry.Enum, name)
		}
	}
	s.Types = append(s.Types, msg)
}

func buildEnum(s *Schema, node *proto.Enum, parent string) {
	e := &Enum{Name: qualify(parent, node.Name)}
	for _, entry := range node.Entries {
		if entry.Value == nil || entry.Value.Name == "" || entry.Value.Number == "" {
			continue
		}
		e.Values = append(e.Values, EnumValue{
			Name:   entry.Value.Name,
			Number: proto.EnumNumber(entry.Value.Number),
		})
	}
	s.Types = append(s.Types, e)
}

func buildField(node *proto.Field, scope string, nested map[string]bool) (Field, bool) {
	if node == nil || node.Type == nil || node.Name == "" || node.Tag == "" {
		return Field{}, false
	}
	return Field{
		Name: node.Name,
		Type: resolveType(node.Type, scope, nested),
		Tag:  proto.TagNumber(node.Tag),
	}, true
}

// resolveType maps a written type to the model. A leading dot marks an
// already-qualified reference and is stripped. An undotted name
// matching a type nested directly in the enclosing message is
// qualified with that message's name; lookup never climbs to outer
// scopes. Everything else is kept verbatim.
func resolveType(ref *proto.TypeRef, scope string, nested map[string]bool) FieldType {
	if ref.Leading {
		return ReferenceType(ref.Path)
	}
	if kind, ok := ScalarOf(ref.Path); ok {
		return ScalarType(kind)
	}
	if !strings.Contains(ref.Path, ".") && nested[ref.Path] {
		return ReferenceType(qualify(scope, ref.Path))
	}
	return ReferenceType(ref.Path)
}
