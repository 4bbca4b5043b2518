package codegen

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/platinummonkey/protopojo/pkg/schema"
)

// JavaRenderer renders a schema into Java data classes, one file per
// declared type. Output is a pure function of the schema: the same
// input yields byte-identical files in the same order.
type JavaRenderer struct{}

// NewJavaRenderer creates a Java renderer.
func NewJavaRenderer() *JavaRenderer {
	return &JavaRenderer{}
}

// Render produces one .java file per type, in declaration order. File
// paths nest under the package's dot-separated segments; nested types
// are emitted as top-level classes named by their last path segment.
func (r *JavaRenderer) Render(s *schema.Schema) []GeneratedFile {
	dir := strings.ReplaceAll(s.Package, ".", "/")

	files := make([]GeneratedFile, 0, len(s.Types))
	for _, decl := range s.Types {
		var source string
		switch t := decl.(type) {
		case *schema.Message:
			source = r.renderMessage(s.Package, t)
		case *schema.Enum:
			source = r.renderEnum(s.Package, t)
		default:
			continue
		}

		path := decl.SimpleName() + ".java"
		if dir != "" {
			path = dir + "/" + path
		}
		files = append(files, GeneratedFile{
			Path:    path,
			Content: []byte(source),
			Size:    int64(len(source)),
		})
	}
	return files
}

func (r *JavaRenderer) renderMessage(pkg string, m *schema.Message) string {
	name := m.SimpleName()

	var b strings.Builder
	b.WriteString(packageLine(pkg))
	fmt.Fprintf(&b, "public class %s {\n", name)

	for _, f := range m.Fields {
		fmt.Fprintf(&b, "    private %s %s;\n", javaType(f.Type), f.Name)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "    public %s() {}\n\n", name)

	for _, f := range m.Fields {
		jt := javaType(f.Type)
		acc := accessorName(f.Name)
		fmt.Fprintf(&b, "    public %s get%s() { return this.%s; }\n", jt, acc, f.Name)
		fmt.Fprintf(&b, "    public void set%s(%s value) { this.%s = value; }\n\n", acc, jt, f.Name)
	}

	b.WriteString("}\n")
	return b.String()
}

func (r *JavaRenderer) renderEnum(pkg string, e *schema.Enum) string {
	name := e.SimpleName()

	var b strings.Builder
	b.WriteString(packageLine(pkg))
	fmt.Fprintf(&b, "public enum %s {\n", name)

	for i, v := range e.Values {
		sep := ","
		if i+1 == len(e.Values) {
			sep = ";"
		}
		fmt.Fprintf(&b, "    %s(%d)%s\n", v.Name, v.Number, sep)
	}

	b.WriteString("\n    private final int number;\n")
	fmt.Fprintf(&b, "    %s(int number) { this.number = number; }\n", name)
	b.WriteString("    public int getNumber() { return number; }\n")
	b.WriteString("}\n")
	return b.String()
}

func packageLine(pkg string) string {
	if pkg == "" {
		return ""
	}
	return fmt.Sprintf("package %s;\n\n", pkg)
}

// accessorName uppercases only the first rune, so snake_case field
// names produce accessors like getShipping_address.
func accessorName(field string) string {
	if field == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(field)
	return string(unicode.ToUpper(r)) + field[size:]
}

// javaType maps a field type to its Java spelling. References render
// as the last segment of their qualified name; whether such a class
// was ever declared is not this renderer's concern.
func javaType(t schema.FieldType) string {
	if !t.IsScalar() {
		name := t.Reference
		if i := strings.LastIndex(name, "."); i >= 0 {
			return name[i+1:]
		}
		return name
	}
	switch t.Scalar {
	case schema.ScalarDouble:
		return "double"
	case schema.ScalarFloat:
		return "float"
	case schema.ScalarInt32, schema.ScalarSint32, schema.ScalarSfixed32,
		schema.ScalarUint32, schema.ScalarFixed32:
		return "int"
	case schema.ScalarInt64, schema.ScalarSint64, schema.ScalarSfixed64,
		schema.ScalarUint64, schema.ScalarFixed64:
		return "long"
	case schema.ScalarBool:
		return "boolean"
	case schema.ScalarString:
		return "String"
	case schema.ScalarBytes:
		return "byte[]"
	default:
		return "Object"
	}
}
