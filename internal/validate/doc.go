// Package validate decides whether single lines of a text index conform to
// their format contract.
//
// Two formats are understood:
//
//	documents:  <digits>\t<text>
//	words:      <f1>\t<f2>\t<f3>[\t...]
//
// # Design Philosophy
//
// Validation is structural only. A documents line needs a numeric
// identifier and some text; a words line needs enough fields. Nothing here
// knows what the fields mean, and nothing repairs a line. Callers decide
// whether a failing line is dropped or reported.
//
// # Line Terminators
//
// Every function accepts a line with or without its terminator. A trailing
// "\n" (or "\r\n") is stripped before inspection; any other "\r" is content.
//
// # Error Handling
//
// ParseDocument wraps one of the sentinel errors defined in errors.go. Use
// errors.Is() to tell the failure categories apart:
//
//	if errors.Is(err, validate.ErrInvalidID) {
//	    // identifier was not all digits
//	}
package validate
