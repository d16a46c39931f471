// Package scaffold turns a finished wizard configuration into a theme
// directory: the root named after the theme slug, the four asset directories,
// a rendered .info file, and the .editorconfig and .jshintrc dotfiles.
package scaffold
