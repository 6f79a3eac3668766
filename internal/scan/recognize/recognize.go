// Package recognize turns uploaded invoice images into text.
package recognize

import (
	"context"
	"errors"
)

// ErrUnreadableImage means the upload could not be decoded as an image.
var ErrUnreadableImage = errors.New("unreadable image")

// Recognizer extracts text from an image. Implementations own any engine
// resources for the duration of the call and release them before returning.
type Recognizer interface {
	Recognize(ctx context.Context, image []byte) (string, error)
}
