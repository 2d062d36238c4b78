package embedurl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestYouTubeID_RecognisedShapes(t *testing.T) {
	urls := []string{
		"https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		"https://youtube.com/watch?v=dQw4w9WgXcQ&t=42s",
		"https://m.youtube.com/watch?v=dQw4w9WgXcQ",
		"https://youtu.be/dQw4w9WgXcQ",
		"https://youtu.be/dQw4w9WgXcQ?si=abc",
		"https://www.youtube.com/embed/dQw4w9WgXcQ",
		"https://www.youtube.com/shorts/dQw4w9WgXcQ",
	}

	for _, u := range urls {
		id, ok := YouTubeID(u)
		assert.True(t, ok, u)
		assert.Equal(t, "dQw4w9WgXcQ", id, u)
	}
}

func TestYouTubeID_Rejects(t *testing.T) {
	urls := []string{
		"",
		"not a url",
		"https://vimeo.com/123456789",
		"https://www.youtube.com/watch?v=short",
		"https://www.youtube.com/channel/UC1234567890",
	}

	for _, u := range urls {
		id, ok := YouTubeID(u)
		assert.False(t, ok, u)
		assert.Empty(t, id, u)
	}
}

func TestYouTube(t *testing.T) {
	assert.Equal(t, "https://www.youtube.com/embed/dQw4w9WgXcQ", YouTube("https://youtu.be/dQw4w9WgXcQ"))
	assert.Equal(t, "https://www.youtube.com/embed/dQw4w9WgXcQ", YouTube("https://www.youtube.com/shorts/dQw4w9WgXcQ"))
	assert.Equal(t, "https://example.com/video", YouTube("https://example.com/video"))
}

func TestGoogleDrive(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"https://drive.google.com/file/d/1aBcD/view", "https://drive.google.com/file/d/1aBcD/preview"},
		{"https://drive.google.com/file/d/1aBcD_-x/view?usp=sharing", "https://drive.google.com/file/d/1aBcD_-x/preview"},
		// /document/d/ also contains /d/, so the file form wins.
		{"https://docs.google.com/document/d/9zY/edit", "https://drive.google.com/file/d/9zY/preview"},
		{"https://drive.google.com/open?id=1aBcD", "https://drive.google.com/open?id=1aBcD"},
		{"garbage", "garbage"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, GoogleDrive(tc.in), tc.in)
	}
}
