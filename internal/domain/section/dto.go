package section

// SaveSectionRequest is the admin create/update form. An empty slug is derived
// from the name.
type SaveSectionRequest struct {
	Name string `json:"name" form:"name" validate:"max=255"`
	Slug string `json:"slug" form:"slug" validate:"max=255"`
}

type ListResponse struct {
	Sections []Summary `json:"sections"`
}
