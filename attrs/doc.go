// Package attrs turns a struct's declared fields into a runtime-checked
// attribute set.
//
// New harvests the exported fields of a prototype struct — their names
// and declared types — and returns an Object whose Set rejects any value
// whose runtime type cannot legally occupy the declared field type:
//
//	type Config struct {
//		Host string
//		Port int
//	}
//
//	o, _ := attrs.New(Config{})
//	_ = o.Set("Port", 5432)      // ok
//	err := o.Set("Port", "5432") // attrs: Port attribute must be ...
//
// The check is Go assignability (identity, or interface satisfaction).
// With WithRegistry, a field declared as a registered ancestor type also
// accepts values of its registered descendant types, reusing the contract
// package's declared ancestor chains.
//
// Attributes start unset; Get on an unset attribute fails rather than
// inventing a zero value, mirroring accessor pairs over shadow storage.
//
// Errors:
//
//	ErrNotStruct   - the prototype is not a struct or pointer to struct.
//	ErrUnknownAttr - the named attribute was never declared.
//	ErrBadType     - the value's runtime type violates the declared type.
//	ErrUnsetAttr   - Get before any successful Set.
package attrs
