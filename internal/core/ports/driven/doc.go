// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - ContentSource: Typed document queries against the CMS
//   - PlaceholderGenerator: Inline blur previews for image fields
//
// # Optional Interfaces
//
//   - SnapshotStore: Static export persistence. Only the export command needs it.
//   - ContentWatcher: Change notification for local content sources.
//   - ConfigStore: Settings file persistence. Used at startup and by the config command.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
