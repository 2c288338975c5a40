// Package domain defines the core business entities for the phone book.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Contact: A phone number and the name it belongs to
//   - Backend: The directory implementation selected at startup
//   - SampleSize: One of the bundled sample phone books
//   - ImportReport: The outcome of a bulk load
//   - Settings: Persisted user preferences
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
package domain
