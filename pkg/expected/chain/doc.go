// Package chain provides a fluent wrapper around expected.Expected[T, E]
// for building synchronous chains using solo primitives.
//
// It composes functions like Switch, Map, Try, Tee, and Finally behind a
// convenient Chain[T, E] type. Once a step yields an error every later step
// is skipped and the error travels to the end unchanged.
//
// Key operations:
// - Start/FromValue/FromError: begin a chain
// - Then: switch to a new Expected[U, E] via a function
// - ThenTry: call a function (U, error) and convert error to failure
// - Map: transform the successful value (T -> U)
// - MapErr: convert the error explicitly (E -> F)
// - Ensure/OnError: run side effects without changing the result
// - Recover: turn an error back into a value
// - Finally: collapse the chain into a final value via handlers
package chain
