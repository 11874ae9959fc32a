// Package cli provides the interactive recipebox command-line client.
//
// It wires configuration, the key-value store, the catalog client and the
// services into a REPL. Typical flow: register or log in, search the catalog,
// open recipes, keep favorites and a shopping list.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits or
// ctx is cancelled. See App and runREPL for details.
package cli
