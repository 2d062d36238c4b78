package material

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayURL(t *testing.T) {
	assert.Equal(t, "https://www.youtube.com/embed/dQw4w9WgXcQ", DisplayURL(FileTypeYouTube, "https://youtu.be/dQw4w9WgXcQ"))
	assert.Equal(t, "https://drive.google.com/file/d/1aBcD/preview", DisplayURL(FileTypeGDrivePDF, "https://drive.google.com/file/d/1aBcD/view"))
	assert.Equal(t, "https://drive.google.com/file/d/1aBcD/preview", DisplayURL(FileTypeGDriveWord, "https://drive.google.com/open/d/1aBcD"))
	assert.Equal(t, "not a link", DisplayURL(FileTypeGDrivePDF, "not a link"))
	assert.Equal(t, "img_x.png", DisplayURL(FileTypeImage, "img_x.png"))
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "Gdrive pdf", Label(FileTypeGDrivePDF))
	assert.Equal(t, "Gdrive word", Label(FileTypeGDriveWord))
	assert.Equal(t, "Image", Label(FileTypeImage))
	assert.Equal(t, "Youtube", Label(FileTypeYouTube))
	assert.Equal(t, "", Label(""))
}

func TestBuildPreview(t *testing.T) {
	imageURL := func(name string) string { return "/uploads/images/" + name }

	p := BuildPreview(&Material{FileType: FileTypeImage, ImagePath: ptr("img_a.png")}, imageURL)
	assert.Equal(t, Preview{Kind: PreviewImage, Label: "Image", ImageURL: "/uploads/images/img_a.png"}, p)

	p = BuildPreview(&Material{FileType: FileTypeYouTube, FileURL: ptr("https://www.youtube.com/shorts/dQw4w9WgXcQ")}, imageURL)
	assert.Equal(t, PreviewYouTube, p.Kind)
	assert.Equal(t, "https://www.youtube.com/embed/dQw4w9WgXcQ", p.EmbedURL)
	assert.Equal(t, "https://www.youtube.com/shorts/dQw4w9WgXcQ", p.SourceURL)

	p = BuildPreview(&Material{FileType: FileTypeGDrivePDF, FileURL: ptr("https://drive.google.com/file/d/1aBcD/view")}, imageURL)
	assert.Equal(t, PreviewGDrive, p.Kind)
	assert.Equal(t, "https://drive.google.com/file/d/1aBcD/preview", p.EmbedURL)

	p = BuildPreview(&Material{FileType: FileTypeImage}, imageURL)
	assert.Equal(t, PreviewNone, p.Kind)
	assert.Empty(t, p.ImageURL)

	p = BuildPreview(&Material{FileType: FileTypeGDriveWord}, imageURL)
	assert.Equal(t, PreviewNone, p.Kind)
}

func TestReferenceRoundTrip(t *testing.T) {
	m := &Material{FileURL: ptr("stale"), ImagePath: ptr("stale.png")}

	m.SetReference(ImageRef{Path: "img_a.png"})
	assert.Equal(t, FileTypeImage, m.FileType)
	assert.Nil(t, m.FileURL)
	assert.Equal(t, ImageRef{Path: "img_a.png"}, m.Reference())

	m.SetReference(YouTubeRef{URL: "https://youtu.be/dQw4w9WgXcQ"})
	assert.Nil(t, m.ImagePath)
	assert.Equal(t, YouTubeRef{URL: "https://youtu.be/dQw4w9WgXcQ"}, m.Reference())

	m.SetReference(DriveRef{Kind: FileTypeGDriveWord, URL: ""})
	assert.Equal(t, FileTypeGDriveWord, m.FileType)
	assert.Nil(t, m.FileURL)
	assert.Nil(t, m.ImagePath)

	assert.Nil(t, (&Material{FileType: "video"}).Reference())
}
