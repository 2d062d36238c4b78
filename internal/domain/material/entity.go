package material

import "time"

// FileType is the declared kind of a material's reference.
type FileType string

const (
	FileTypeGDrivePDF  FileType = "gdrive_pdf"
	FileTypeGDriveWord FileType = "gdrive_word"
	FileTypeImage      FileType = "image"
	FileTypeYouTube    FileType = "youtube"
)

func (t FileType) Valid() bool {
	switch t {
	case FileTypeGDrivePDF, FileTypeGDriveWord, FileTypeImage, FileTypeYouTube:
		return true
	}
	return false
}

func (t FileType) IsGoogleDrive() bool {
	return t == FileTypeGDrivePDF || t == FileTypeGDriveWord
}

// Material is the persisted row. FileURL and ImagePath are the flattened form
// of Reference; at most one of them is set and which one follows FileType.
type Material struct {
	ID          int64     `gorm:"primaryKey" json:"id"`
	SectionID   int64     `gorm:"not null;index" json:"section_id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description *string   `gorm:"type:text" json:"description"`
	FileType    FileType  `gorm:"size:20;not null" json:"file_type"`
	FileURL     *string   `gorm:"type:text" json:"file_url"`
	ImagePath   *string   `gorm:"size:255" json:"image_path"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Material) TableName() string {
	return "materials"
}

// StoredImage returns the blob name owned by the material, or "".
func (m *Material) StoredImage() string {
	if m == nil || m.ImagePath == nil {
		return ""
	}
	return *m.ImagePath
}

// Listing is a material joined with the name and slug of its section.
type Listing struct {
	Material
	SectionName string `json:"section_name"`
	SectionSlug string `json:"section_slug"`
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
