// Package solo contains single-value, synchronous primitives that operate
// on expected.Expected[T, E]. They take a context and are the building
// blocks for the chain and stream packages.
//
// Highlights:
// - Succeed/Fail: construct Expected[T, E]
// - Validate/AndValidate/ValidateAll: turn invalid input into an error
// - Switch: move from Expected[In, E] to Expected[Out, E] through a fallible step
// - Map/DoubleMap: transform successful values
// - Try/FailOnError: lift (Out, error) returns onto the error rail
// - Recover: give an error a chance to become a value
// - Tee/TeeIf/DoubleTee: side-effect helpers
// - Finally: reduce to a concrete value via success/error handlers
package solo
