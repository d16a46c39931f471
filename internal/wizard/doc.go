// Package wizard collects a new theme's configuration. It runs three
// prompt steps in a fixed order (base, base theme settings, directory layout)
// and saves the accumulated answers to the store after each one.
package wizard
