// Package digits implements non-negative decimal integers stored as plain
// digit sequences, with schoolbook addition and subtraction.
//
// A Digits value keeps its most significant digit first, which is the order
// used for parsing, printing and comparison. Add and Sub work on reversed
// scratch copies so carries and borrows propagate from the ones digit, the
// way long addition is done by hand. Inputs are never modified.
//
// Sub canonicalizes its result (no leading zeros, at least one digit). Add
// does not: a final carry is a real new leading digit, and leading zeros
// supplied by the caller are kept.
package digits
