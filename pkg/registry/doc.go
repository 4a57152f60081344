// Package registry associates value types with the functions that read,
// display and trace them as text.
//
// A Registry is built once during bootstrap, filled with one Entry per
// domain.TypeKey, handed to every signal that needs it and closed at teardown.
// Keys are explicit strings chosen by the application rather than runtime type
// identity, so separately built packages resolve the same logical type to the
// same entry.
//
//	reg := registry.New()
//	if err := cast.RegisterBuiltins(reg); err != nil {
//	    // ...
//	}
//	entry, err := reg.Lookup(domain.KeyVector)
package registry
