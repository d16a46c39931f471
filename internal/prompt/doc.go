// Package prompt models the questions the wizard asks and the Asker
// implementations that put them to a user. LineAsker reads numbered menus and
// plain lines from any io.Reader; HuhAsker renders the same questions as
// charmbracelet/huh forms when stdin is a terminal.
package prompt
