package highlight

// Built-in language tokenizers. The set is fixed and small; language
// selection happens once per file in Detect, not per keystroke.

// GoTokenizer returns the tokenizer for Go.
func GoTokenizer() *Tokenizer {
	return newTokenizer("go", "//", "\"'`",
		"break", "case", "chan", "const", "continue", "default", "defer",
		"else", "fallthrough", "for", "func", "go", "goto", "if", "import",
		"interface", "map", "package", "range", "return", "select",
		"struct", "switch", "type", "var",
		"true", "false", "nil", "iota",
		"int", "int8", "int16", "int32", "int64",
		"uint", "uint8", "uint16", "uint32", "uint64", "uintptr",
		"float32", "float64", "complex64", "complex128",
		"bool", "byte", "rune", "string", "error", "any")
}

// CTokenizer returns the tokenizer for C and C++.
func CTokenizer() *Tokenizer {
	return newTokenizer("c", "//", `"'`,
		"switch", "if", "while", "for", "break", "continue", "return",
		"else", "struct", "union", "typedef", "static", "enum", "class",
		"case",
		"int", "long", "double", "float", "char", "unsigned", "signed",
		"void")
}

// RustTokenizer returns the tokenizer for Rust.
func RustTokenizer() *Tokenizer {
	return newTokenizer("rust", "//", `"'`,
		"as", "break", "const", "continue", "crate", "else", "enum",
		"extern", "false", "fn", "for", "if", "impl", "in", "let", "loop",
		"match", "mod", "move", "mut", "pub", "ref", "return", "self",
		"static", "struct", "super", "trait", "true", "type", "unsafe",
		"use", "where", "while",
		"bool", "char", "f32", "f64", "i8", "i16", "i32", "i64", "i128",
		"isize", "str", "u8", "u16", "u32", "u64", "u128", "usize")
}

// JavaScriptTokenizer returns the tokenizer for JavaScript/TypeScript.
func JavaScriptTokenizer() *Tokenizer {
	return newTokenizer("javascript", "//", "\"'`",
		"break", "case", "catch", "class", "const", "continue", "default",
		"delete", "do", "else", "export", "extends", "finally", "for",
		"function", "if", "import", "in", "instanceof", "let", "new",
		"of", "return", "static", "super", "switch", "this", "throw",
		"try", "typeof", "var", "while", "yield", "async", "await",
		"true", "false", "null", "undefined",
		"Number", "String", "Boolean", "Object", "Array", "Function")
}

// PythonTokenizer returns the tokenizer for Python.
func PythonTokenizer() *Tokenizer {
	return newTokenizer("python", "#", `"'`,
		"and", "as", "assert", "break", "class", "continue", "def", "del",
		"elif", "else", "except", "False", "finally", "for", "from",
		"global", "if", "import", "in", "is", "lambda", "None", "nonlocal",
		"not", "or", "pass", "raise", "return", "True", "try", "while",
		"with", "yield",
		"bool", "bytearray", "bytes", "complex", "dict", "float",
		"frozenset", "int", "list", "object", "range", "set", "slice",
		"str", "tuple", "type")
}

// builtins maps normalized language names (as reported by enry) to
// tokenizer constructors.
var builtins = map[string]func() *Tokenizer{
	"go":         GoTokenizer,
	"c":          CTokenizer,
	"c++":        CTokenizer,
	"rust":       RustTokenizer,
	"javascript": JavaScriptTokenizer,
	"typescript": JavaScriptTokenizer,
	"python":     PythonTokenizer,
}
