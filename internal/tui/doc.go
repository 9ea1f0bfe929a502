/*
Package tui implements the terminal user interface for anonctl.

# Architecture

The TUI follows the Bubble Tea framework's Model-Update-View pattern:
  - Model: Maintains all application state
  - Update: Processes messages and returns commands
  - View: Renders the current state to the terminal

# Key Components

  - model.go: Core state, message types, and the Update loop
  - keys.go: Keyboard input handling and focus routing
  - render.go: View rendering for the tabs, banner, and status bar
  - actions.go: Side effects (anonymize command, clipboard, health probe)
  - init.go: Model construction and program startup

# State Management

Session state (input text, loading flag, last error, last result) does not
live in the Model: it lives in the store package, the single source of truth
shared with the lifecycle controller. The Model holds presentation state
only: active tab, panel focus, widget models, transient status text.

The store notifies subscribers synchronously on every mutation. At startup
the program subscribes and relays each notification into the event loop via
Program.Send (on a separate goroutine, since a synchronous send from inside
Update would block the loop against itself). The Update handler then
re-derives the visible tab through the view package's pure projections.

# Threading Model

The TUI runs in a single goroutine (Bubble Tea's event loop). Anonymize
requests run in the goroutine Bubble Tea spawns for the command; the store's
single-flight gate guarantees at most one such request is outstanding, so
result and error writes never race. There is no cancellation: an issued
request runs to completion before the gate releases.
*/
package tui
