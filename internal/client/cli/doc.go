// Package cli provides the interactive portal command-line client.
//
// It wires configuration, the HTTP pipeline (CSRF, tunnel bypass, request
// correlation, error normalization and 401-triggered refresh), the in-memory
// session and an interactive REPL. Typical flow: silently restore the
// session, open the start route, and execute user commands.
//
// Key features:
//   - Login / Logout, with an interactive two-factor challenge loop
//   - Dashboard summary and resource browsing (contracts, plazas,
//     establishments, appointments)
//   - Contract PDF download
//   - Account maintenance: password change, password reset, two-factor toggle
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
