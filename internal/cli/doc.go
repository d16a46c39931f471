// Package cli defines the Cobra command tree for the drupaltheme CLI. Each
// file registers one command with the root. Commands delegate to the wizard,
// scaffold and install packages and only handle flags, I/O and terminal
// detection.
package cli
