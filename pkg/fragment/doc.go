// Package fragment renders small HTML fragments from a name and a list.
//
// Every renderer comes in two shapes: a function returning the finished
// string and an Into variant appending to a caller supplied Sink, so nested
// renders can share one accumulator. Text values are escaped with EscapeHTML;
// literal separators are written as-is.
package fragment
