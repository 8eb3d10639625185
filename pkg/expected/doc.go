// Package expected contains Expected[T, E], a value that holds either a
// successful T or an error E, never both.
//
// Highlights:
// - Success/Fail/FromUnexpected/WithUnexpect: construct Expected[T, E]
// - IsSuccess/Kind: the only accessors safe in every state
// - Value/Error: checked reads returning ErrWrongVariantAccess on misuse
// - MustValue/MustError: unchecked reads that panic on misuse
// - Map/Bind: transform or chain on the success rail, short-circuit on error
//
// The zero Expected[T, E] holds Error(zero E).
//
// Map and Bind take their input by value and never consume it, so a result
// can feed several branches.
package expected
