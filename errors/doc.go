// Package errors provides the structured error type produced by the module decoder.
//
// Every error carries a Kind, a human-readable Message and an absolute byte
// Offset pointing at the place in the original buffer where the failing read
// began. Decoders never wrap or reshape these errors, so a diagnostic can be
// rendered straight from the value:
//
//	err := errors.Malformed(off, "invalid memory limits flags: 0x%x", flags)
//
// Use the Builder when the message is assembled in steps:
//
//	err := errors.New(errors.KindMalformed, off).
//		Message("section size mismatch").
//		Build()
//
// Errors support errors.Is against the Err* sentinels, which match on Kind.
package errors
