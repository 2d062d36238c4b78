package image

import (
	"errors"
	"fmt"
)

var (
	ErrUploadRejected  = errors.New("upload rejected")
	ErrFileTooLarge    = fmt.Errorf("%w: file exceeds maximum allowed size", ErrUploadRejected)
	ErrBadExtension    = fmt.Errorf("%w: file type is not allowed", ErrUploadRejected)
	ErrBlobWriteFailed = errors.New("failed to store image")
)
