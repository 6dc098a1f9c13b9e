// Package cli implements the interactive snackdash storefront.
//
// # Overview
//
// The package provides:
//  1. An App wiring the record store, menu catalog, cart engine, and account
//     engine over a single local SQLite database.
//  2. A read–eval–print loop (runREPL) dispatching storefront commands:
//     browsing the menu, cart operations, checkout summary, and the
//     register/login/logout/admin-login session flows.
//  3. Prompt helpers for line input and no-echo password entry.
//
// # Error Handling
//
// Engine errors are rendered as user-facing messages and the loop continues;
// no command failure is fatal. Empty required inputs are rejected at the
// prompt before any engine call.
//
// # Test Seams
//
// User-facing output goes through printlnFn, password entry through
// readPassword, and the REPL depends only on the execIface subset of App, so
// tests can drive the loop with fakes.
package cli
