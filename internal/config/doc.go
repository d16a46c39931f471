// Package config manages user-level settings stored at ~/.drupaltheme/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// skip_install, which turns off the post-run dependency installation.
package config
