package domain

// TypeKey identifies one concrete value type inside a cast registry.
// Keys are chosen by the application, so two packages that register the same
// logical type agree on its identity by agreeing on the string.
type TypeKey string

// Built-in keys registered by cast.RegisterBuiltins.
const (
	KeyDouble TypeKey = "double"
	KeyFloat  TypeKey = "float"
	KeyInt    TypeKey = "int"
	KeyInt64  TypeKey = "int64"
	KeyUint   TypeKey = "uint"
	KeyBool   TypeKey = "bool"
	KeyString TypeKey = "string"
	KeyVector TypeKey = "vector"
	KeyMatrix TypeKey = "matrix"
)

func (k TypeKey) String() string { return string(k) }

// Valid reports whether k can be used as a registry key.
func (k TypeKey) Valid() bool { return k != "" }
