// Package tested is a registration, discovery, filtering and execution
// engine for lightweight test suites.
//
// Independently compiled modules contribute groups of cases to a Registry
// at start-up via RegisterGroup. A query over the Registry (GetAll,
// ByGroup, ByAddress, ...) yields a Subset, an unexecuted view of the
// catalog narrowed by a name filter. Subset.Run executes the selected
// cases, streams progress to an Observer, and returns aggregate Stats.
//
// A case body is an ordinary function receiving a Runtime. Its first
// observable action must be a call to Runtime.StartCase; after that it may
// call Fail, FailIf, Skip or Corrupt, or simply return to pass. The
// StartCase-first rule is what makes discovery work: during registration
// each body is probed with a collector Runtime that stops it at StartCase,
// so real side effects never run at discovery time.
//
// Authoring rule: a body must let panics it did not raise itself propagate.
// A body that unconditionally recovers from all panics swallows the
// framework's control signals and breaks both discovery and filtering.
package tested
