package material

import (
	"errors"

	"coursematerials/internal/pkg/apperr"
)

var (
	ErrMaterialNotFound = errors.New("material not found")

	ErrTitleRequired      = apperr.New("TITLE_REQUIRED", "Title is required.")
	ErrSectionRequired    = apperr.New("SECTION_REQUIRED", "Please select a section.")
	ErrInvalidFileType    = apperr.New("INVALID_FILE_TYPE", "Invalid file type.")
	ErrImageUploadFailed  = apperr.New("IMAGE_UPLOAD_FAILED", "Failed to upload image. Check file type and size.")
	ErrImageRequired      = apperr.New("IMAGE_REQUIRED", "An image upload is required for image materials.")
	ErrYouTubeURLRequired = apperr.New("YOUTUBE_URL_REQUIRED", "YouTube URL is required for YouTube materials.")
	ErrInvalidYouTubeURL  = apperr.New("INVALID_YOUTUBE_URL", "Invalid YouTube URL. Please provide a valid YouTube video link.")
)
