// Package cli provides the interactive Time Report command-line client.
//
// It wires the configuration, the local session database, the services and
// the workspace behind a small REPL. Students submit, browse and delete
// their reports; teachers browse the roster, open a student's reports and
// accept or reject them.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
