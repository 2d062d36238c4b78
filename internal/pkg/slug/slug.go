package slug

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrEmpty = errors.New("slug is empty")
	ErrTaken = errors.New("slug already exists")
)

var (
	disallowed = regexp.MustCompile(`[^a-z0-9\s-]`)
	separators = regexp.MustCompile(`[\s-]+`)
)

// Slugify lowercases text, drops everything outside [a-z0-9], whitespace and
// '-', collapses whitespace/hyphen runs into one '-' and trims hyphens at both
// ends. The result is either "" or matches ^[a-z0-9]+(-[a-z0-9]+)*$.
func Slugify(text string) string {
	s := strings.ToLower(text)
	s = disallowed.ReplaceAllString(s, "")
	s = separators.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// TakenFunc reports whether a candidate slug is already used.
type TakenFunc func(candidate string) (bool, error)

// Resolve picks the slug for a section: the explicit one when it slugifies to
// something, otherwise one derived from name. Conflicts are reported, not
// suffixed away.
func Resolve(name, explicit string, taken TakenFunc) (string, error) {
	candidate := Slugify(explicit)
	if candidate == "" {
		candidate = Slugify(name)
	}
	if candidate == "" {
		return "", ErrEmpty
	}

	used, err := taken(candidate)
	if err != nil {
		return "", err
	}
	if used {
		return "", ErrTaken
	}
	return candidate, nil
}
