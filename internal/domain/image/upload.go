package image

import (
	"io"
	"mime/multipart"
)

// Upload describes a pending image that has not reached the blob store yet.
type Upload struct {
	Name string
	Size int64
	// Open returns the bytes; called at most once, only after the upload passed
	// size and extension checks.
	Open func() (io.ReadCloser, error)
}

func FromMultipart(fh *multipart.FileHeader) *Upload {
	if fh == nil {
		return nil
	}
	return &Upload{
		Name: fh.Filename,
		Size: fh.Size,
		Open: func() (io.ReadCloser, error) { return fh.Open() },
	}
}
