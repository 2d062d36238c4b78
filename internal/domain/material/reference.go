package material

// Reference is what a material points at. Exactly one variant applies per
// FileType.
type Reference interface {
	FileType() FileType
	isReference()
}

// DriveRef is a Google Drive share link, kept verbatim.
type DriveRef struct {
	Kind FileType
	URL  string
}

// ImageRef names a blob owned by the material.
type ImageRef struct {
	Path string
}

// YouTubeRef is a link from which a video id can be extracted.
type YouTubeRef struct {
	URL string
}

func (r DriveRef) FileType() FileType {
	if r.Kind == FileTypeGDriveWord {
		return FileTypeGDriveWord
	}
	return FileTypeGDrivePDF
}
func (ImageRef) FileType() FileType   { return FileTypeImage }
func (YouTubeRef) FileType() FileType { return FileTypeYouTube }

func (DriveRef) isReference()   {}
func (ImageRef) isReference()   {}
func (YouTubeRef) isReference() {}

// Reference rebuilds the variant from the persisted columns. It returns nil
// for an unknown file type.
func (m *Material) Reference() Reference {
	switch m.FileType {
	case FileTypeGDrivePDF, FileTypeGDriveWord:
		return DriveRef{Kind: m.FileType, URL: deref(m.FileURL)}
	case FileTypeImage:
		return ImageRef{Path: deref(m.ImagePath)}
	case FileTypeYouTube:
		return YouTubeRef{URL: deref(m.FileURL)}
	}
	return nil
}

// SetReference flattens ref into FileType, FileURL and ImagePath, clearing
// the column the variant does not use.
func (m *Material) SetReference(ref Reference) {
	m.FileType = ref.FileType()
	switch r := ref.(type) {
	case DriveRef:
		m.FileURL = nullable(r.URL)
		m.ImagePath = nil
	case ImageRef:
		m.FileURL = nil
		m.ImagePath = nullable(r.Path)
	case YouTubeRef:
		m.FileURL = nullable(r.URL)
		m.ImagePath = nil
	}
}
