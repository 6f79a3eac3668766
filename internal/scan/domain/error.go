package domain

import "errors"

var (
	ErrEmptyUpload       = errors.New("empty_upload")
	ErrRecognitionFailed = errors.New("recognition_failed")
	ErrNoMeaningfulText  = errors.New("no_meaningful_text")
	ErrScanNotFound      = errors.New("scan_not_found")
	ErrUnauthenticated   = errors.New("unauthenticated")
	ErrSaveFailed        = errors.New("save_failed")
)
