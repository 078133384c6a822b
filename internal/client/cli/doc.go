// Package cli provides the interactive terminal front end of the deck
// viewer.
//
// It wires configuration, the local listing cache, the presentations store
// client and the editing session into a line-oriented REPL. Playback
// commands (next, prev, show) page through the deck; "admin" toggles the
// editor, which unlocks the slide editing and store synchronisation
// commands. A background watcher pings the store and flips the client
// between online and offline mode.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, StartOnlineStatusWatcher and runREPL for details.
package cli
