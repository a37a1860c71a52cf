// Package driving defines interfaces that external actors (UI, CLI) use
// to interact with core services. These are the "driving" ports in hexagonal
// architecture terminology - they drive the application.
//
// Implementations of these interfaces live in internal/core/services.
//
// # Import Rules
//
//   - Can Import: domain, jsondoc
//   - Cannot Import: Any adapter package
package driving
