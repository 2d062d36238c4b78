package section

import "time"

// Section groups materials under a unique, URL-safe slug.
type Section struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Slug      string    `gorm:"size:255;not null;uniqueIndex" json:"slug"`
	CreatedAt time.Time `json:"created_at"`
}

func (Section) TableName() string {
	return "sections"
}

// Summary is a section row with the number of materials filed under it.
type Summary struct {
	Section
	MaterialCount int64 `json:"material_count"`
}
