// Package basetheme holds the fixed catalog of Drupal base themes a new theme
// can inherit from, and the registry of settings providers that contribute
// extra questions for some of them. Several catalog entries may share one
// provider.
package basetheme
