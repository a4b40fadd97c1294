// Package cli provides the interactive alumni-portal command-line client.
//
// It wires configuration, the local session database, API services, and an
// interactive REPL. Typical flow: restore a persisted session, start a
// background connectivity watcher, and execute user commands.
//
// Key features:
//   - Register / Login / Logout
//   - View and update the alumni profile
//   - Browse announcements page by page, show one, post a new one
//   - List departments and show one
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// See App, StartOnlineStatusWatcher, and runREPL for details.
package cli
