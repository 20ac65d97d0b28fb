// Package driving defines the interfaces external actors use to drive
// the core: the CLI, the TUI, and tests.
//
// These are the "driving" or "primary" ports in hexagonal architecture.
// Core services implement them.
package driving
