package material

import "coursematerials/internal/domain/section"

// SaveMaterialRequest is the admin material form, sent as multipart so an
// image can ride along in the "image" field.
type SaveMaterialRequest struct {
	SectionID   int64  `form:"section_id" json:"section_id"`
	Title       string `form:"title" json:"title" validate:"max=255"`
	Description string `form:"description" json:"description" validate:"max=10000"`
	FileType    string `form:"file_type" json:"file_type"`
	FileURL     string `form:"file_url" json:"file_url" validate:"max=2048"`
}

func (r SaveMaterialRequest) payload() Payload {
	return Payload{
		SectionID:   r.SectionID,
		Title:       r.Title,
		Description: r.Description,
		FileType:    r.FileType,
		FileURL:     r.FileURL,
	}
}

type ListResponse struct {
	Materials []View `json:"materials"`
}

// SectionPage is a section with the materials filed under it.
type SectionPage struct {
	Section   *section.Section `json:"section"`
	Materials []View           `json:"materials"`
}
