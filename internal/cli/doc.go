// Package cli provides the interactive lifecalc command-line client.
//
// It wires configuration, the local SQLite store, the authentication and
// calculation services and a REPL. Typical flow: log in (or use the demo
// account), browse policies, request a premium quote, and keep the quotes
// worth comparing.
//
// Key features:
//   - Register / Login / Logout / Status
//   - Policies: browse the catalog by category
//   - Quote: interactive premium estimate with field-level re-prompts
//   - Save / Saved / Delete: up to six kept quotes per user
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
