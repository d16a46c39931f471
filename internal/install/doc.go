// Package install runs the package manager installs that follow theme
// generation. Each manager runs only when its manifest is present in the
// theme directory, and a manager missing from PATH is reported as a warning.
package install
