package wizard

import (
	"errors"
	"regexp"
	"strings"
	"unicode"

	"github.com/gosimple/slug"
)

var dashRuns = regexp.MustCompile(`[-_]+`)

// Slugify normalizes free text into a lowercase, dash-separated token that is
// safe to use as a file or directory name. Every run of characters that is
// not a letter or digit becomes a single dash; symbols are never spelled out.
func Slugify(s string) string {
	s = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			return r
		}
		return ' '
	}, s)
	return strings.Trim(dashRuns.ReplaceAllString(slug.Make(s), "-"), "-")
}

var (
	errNameRequired = errors.New("please enter your theme's name")
	errNameNoSlug   = errors.New("the name must contain at least one letter or digit")
	errDirNoSlug    = errors.New("the directory name must contain at least one letter or digit")
)

func validateProjectName(s string) error {
	if strings.TrimSpace(s) == "" {
		return errNameRequired
	}
	if Slugify(s) == "" {
		return errNameNoSlug
	}
	return nil
}

func validateDirName(s string) error {
	if Slugify(s) == "" {
		return errDirNoSlug
	}
	return nil
}
