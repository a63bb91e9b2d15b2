package symbols

import "strings"

var predefined = map[string]SpecialKind{
	"sbyte":   SpecialSignedInt,
	"short":   SpecialSignedInt,
	"int":     SpecialSignedInt,
	"long":    SpecialSignedInt,
	"nint":    SpecialSignedInt,
	"byte":    SpecialUnsignedInt,
	"ushort":  SpecialUnsignedInt,
	"uint":    SpecialUnsignedInt,
	"ulong":   SpecialUnsignedInt,
	"nuint":   SpecialUnsignedInt,
	"float":   SpecialFloat,
	"double":  SpecialFloat,
	"decimal": SpecialOther,
	"bool":    SpecialBool,
	"char":    SpecialChar,
	"string":  SpecialString,
	"object":  SpecialClass,
	"void":    SpecialOther,
	"dynamic": SpecialOther,
}

var aliases = map[string]string{
	"SByte":   "sbyte",
	"Int16":   "short",
	"Int32":   "int",
	"Int64":   "long",
	"IntPtr":  "nint",
	"Byte":    "byte",
	"UInt16":  "ushort",
	"UInt32":  "uint",
	"UInt64":  "ulong",
	"UIntPtr": "nuint",
	"Single":  "float",
	"Double":  "double",
	"Decimal": "decimal",
	"Boolean": "bool",
	"Char":    "char",
	"String":  "string",
	"Object":  "object",
}

// canonical maps a type spelling to the keyword of the predefined type it
// names, or returns it unchanged.
func canonical(name string) string {
	name = strings.TrimPrefix(strings.TrimPrefix(name, "global::"), "System.")
	if keyword, ok := aliases[name]; ok {
		return keyword
	}

	return name
}

// CanonicalType returns the spelling used to compare two types for equality:
// whitespace is normalized and System aliases become their keywords.
func CanonicalType(name string) string {
	return canonical(normalizeSpace(name))
}

// simpleName reduces "A.B.C<T>" and "C?" to "C".
func simpleName(name string) string {
	name = normalizeSpace(name)
	name = strings.TrimSuffix(name, "?")

	if i := strings.IndexByte(name, '<'); i >= 0 {
		name = name[:i]
	}

	if i := strings.LastIndexAny(name, ".:"); i >= 0 {
		name = name[i+1:]
	}

	return name
}

// normalizeSpace drops whitespace around punctuation and collapses the rest
// to single spaces, so "List< int >" and "List<int>" compare equal.
func normalizeSpace(s string) string {
	fields := strings.Fields(s)
	if len(fields) <= 1 {
		return strings.Join(fields, "")
	}

	var b strings.Builder

	for i, f := range fields {
		if i > 0 && isWordEnd(fields[i-1]) && isWordStart(f) {
			b.WriteByte(' ')
		}

		b.WriteString(f)
	}

	return b.String()
}

func isWordEnd(s string) bool {
	return isWordByte(s[len(s)-1])
}

func isWordStart(s string) bool {
	return isWordByte(s[0])
}

func isWordByte(c byte) bool {
	return c == '_' || c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= 0x80
}
