// Package app wires the drills programs for the CLI.
//
// It validates the resolved Config and builds one domain.Program per
// exercise, exposing them via the App struct for commands to use.
package app
