// Package commands defines the drills CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - arith   Add and subtract two digit sequences
//   - search  Find the first even value within three sigma above the mean
//   - sort    Bubble sort a fixed number of integers
//
// # Configuration
//
// Capacities and the log level resolve from flags, then DRILLS_* environment
// variables (DRILLS_MAX_DIGITS and so on), then the config file given with
// --config or $HOME/.drills.yaml, then built-in defaults. The root command
// resolves them and builds the programs before any subcommand runs.
//
// Every program reads stdin and writes one result per line to stdout, or n/a
// when its input is rejected. Diagnostics go to stderr.
package commands
