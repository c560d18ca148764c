// Package errors provides structured, actionable diagnostics for renderprop.
//
// Resolvers never fail: a malformed render override falls back to the
// default element and an incompatible handler is left unchained. Those
// situations are still worth surfacing during development, so they are
// described by coded errors that strict mode hands to an error handler.
// The CLI, gallery and fixture loader return the same type.
//
// # Error Categories
//
//   - merge: attribute merging (handler chaining)
//   - render: render override dispatch
//   - config: renderprop.json problems
//   - fixture: fixture files
//   - gallery: the preview server
//   - cli: command-line usage
//
// # Usage
//
//	err := errors.New("E030").
//	    WithLocation("fixtures/card.yaml", 4, 3).
//	    WithSuggestion("variant must be one of slot, stateful, container")
//
//	fmt.Println(err.Format())
package errors
