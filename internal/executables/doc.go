// Package executables turns the flat rows of a test case or user keyword
// body into the ordered executable nodes the executor walks through.
//
// Two loop notations are understood. The old one starts with a ":FOR" (or
// ": FOR") cell and collects every following row whose first cell is a
// backslash:
//
//	:FOR    ${x}    IN    1    2
//	\    Log    ${x}
//
// The new one starts with "FOR" and ends with a row holding "END":
//
//	FOR    ${x}    IN    1    2
//	    Log    ${x}
//	END
//
// Loops are not nested; every body row becomes a plain node of the loop.
package executables
