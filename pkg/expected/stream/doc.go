// Package stream runs expected.Expected values through channel pipelines.
//
// Every value travels as a Tracked item carrying a trace id and its input
// position, so results fanned out over several worker lines can be matched
// back to their inputs. Stages never touch the error payload; an item that
// failed upstream flows through later stages unchanged.
//
// Common usage:
// - Source/SourceResults: emit tracked items
// - Run/Turnout: execute a stage over an input channel with a number of lines
// - Map/Bind/Validate/Try/Tee: build stages from plain functions
// - Finally: collapse items to Out values
// - Collect/CollectOrdered: drain a channel
//
// Worker count, cancellation behavior, and the logger come from the context,
// see WithWorkerOptions, WithProcessOptions and WithLogger.
package stream
