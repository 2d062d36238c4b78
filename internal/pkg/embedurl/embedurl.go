// Package embedurl turns user-supplied share links into URLs that can be put
// straight into an iframe. Nothing here fetches anything and nothing fails:
// an input that is not recognised comes back unchanged.
package embedurl

import (
	"fmt"
	"regexp"
)

const (
	youTubeEmbedBase = "https://www.youtube.com/embed/"
	driveFileFormat  = "https://drive.google.com/file/d/%s/preview"
	docsFileFormat   = "https://docs.google.com/document/d/%s/preview"
)

// Checked in order, first match wins.
var youTubePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/|youtube\.com/embed/)([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`youtube\.com/shorts/([a-zA-Z0-9_-]{11})`),
}

var (
	driveFilePattern = regexp.MustCompile(`/d/([a-zA-Z0-9_-]+)`)
	docsFilePattern  = regexp.MustCompile(`/document/d/([a-zA-Z0-9_-]+)`)
)

// YouTubeID returns the 11 character video id found in url, or "" and false.
// It is also the only validity check for YouTube links.
func YouTubeID(url string) (string, bool) {
	for _, p := range youTubePatterns {
		if m := p.FindStringSubmatch(url); m != nil {
			return m[1], true
		}
	}
	return "", false
}

// YouTube returns https://www.youtube.com/embed/{id} when an id can be
// extracted, otherwise url itself.
func YouTube(url string) string {
	id, ok := YouTubeID(url)
	if !ok {
		return url
	}
	return youTubeEmbedBase + id
}

// GoogleDrive maps a Drive file or Docs link to its /preview form.
func GoogleDrive(url string) string {
	if m := driveFilePattern.FindStringSubmatch(url); m != nil {
		return fmt.Sprintf(driveFileFormat, m[1])
	}
	if m := docsFilePattern.FindStringSubmatch(url); m != nil {
		return fmt.Sprintf(docsFileFormat, m[1])
	}
	return url
}

