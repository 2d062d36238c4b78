package material

import (
	"strings"

	"coursematerials/internal/pkg/embedurl"
)

const (
	PreviewImage   = "image"
	PreviewGDrive  = "gdrive"
	PreviewYouTube = "youtube"
	PreviewNone    = "none"
)

// DisplayURL is the embeddable form of a stored reference URL. Unrecognised
// input is returned unchanged.
func DisplayURL(fileType FileType, fileURL string) string {
	switch {
	case fileType == FileTypeYouTube:
		return embedurl.YouTube(fileURL)
	case fileType.IsGoogleDrive():
		return embedurl.GoogleDrive(fileURL)
	}
	return fileURL
}

// Preview is what a page needs to render a material.
type Preview struct {
	Kind      string `json:"kind"`
	Label     string `json:"label"`
	EmbedURL  string `json:"embed_url,omitempty"`
	SourceURL string `json:"source_url,omitempty"`
	ImageURL  string `json:"image_url,omitempty"`
}

// View is a material listing with its preview.
type View struct {
	Listing
	Preview Preview `json:"preview"`
}

// Label renders a file type for humans, "gdrive_pdf" becoming "Gdrive pdf".
func Label(t FileType) string {
	s := strings.ReplaceAll(string(t), "_", " ")
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// BuildPreview derives the preview from the material's reference. imageURL
// maps a blob name to its public address.
func BuildPreview(m *Material, imageURL func(string) string) Preview {
	p := Preview{Kind: PreviewNone, Label: Label(m.FileType)}

	switch ref := m.Reference().(type) {
	case ImageRef:
		if ref.Path != "" {
			p.Kind = PreviewImage
			p.ImageURL = imageURL(ref.Path)
		}
	case DriveRef:
		if ref.URL != "" {
			p.Kind = PreviewGDrive
			p.EmbedURL = DisplayURL(ref.FileType(), ref.URL)
			p.SourceURL = ref.URL
		}
	case YouTubeRef:
		if ref.URL != "" {
			p.Kind = PreviewYouTube
			p.EmbedURL = DisplayURL(FileTypeYouTube, ref.URL)
			p.SourceURL = ref.URL
		}
	}
	return p
}
