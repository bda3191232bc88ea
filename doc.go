// Package argvalidation provides argument validation helpers that report the
// name of the offending parameter.
//
// Wrap the value in a target that carries its name, then check it:
//
//	func Transfer(from, to *Account, memo string) error {
//	    if err := ValidateArgumentNotNil(Arg("from", from)); err != nil {
//	        return err
//	    }
//	    if err := ValidateArgumentNotNilOrWhitespace(Arg("memo", memo), "memo is printed on statements"); err != nil {
//	        return err
//	    }
//	    ...
//	}
//
// Failures are returned as [*ArgumentError]. Use [errors.Is] with
// [ErrArgumentInvalid] or [ErrArgumentMissing] to tell the two kinds apart.
//
// A nil target means nothing was supplied for validation and every validator
// returns nil for it. This is not the same as a target whose value is nil.
//
// [Field] names a struct field argument after its JSON tag (or Go field name)
// by locating the field from its pointer, so the name cannot drift from the
// field it describes:
//
//	err := ValidateArgumentNotNilOrEmpty(Field(&req, &req.Email))
package argvalidation
