package recognize

import (
	"context"
	"fmt"

	"github.com/otiai10/gosseract/v2"
	"go.uber.org/zap"

	"github.com/atriumhq/atrium/internal/config"
)

// Tesseract recognizes text with a local tesseract engine. A fresh client
// is created per call and closed before returning, so a failed recognition
// never leaks engine state into the next one.
type Tesseract struct {
	log      *zap.Logger
	language string
}

func NewTesseract(cfg config.Config, log *zap.Logger) *Tesseract {
	return &Tesseract{
		log:      log.Named("scan.recognize"),
		language: cfg.OCRLanguage,
	}
}

func (t *Tesseract) Recognize(ctx context.Context, image []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	prepared, err := preprocess(image)
	if err != nil {
		return "", err
	}

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(t.language); err != nil {
		return "", fmt.Errorf("set language %q: %w", t.language, err)
	}
	if err := client.SetImageFromBytes(prepared); err != nil {
		return "", fmt.Errorf("load image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("recognize text: %w", err)
	}

	t.log.Debug("recognized text",
		zap.Int("image_bytes", len(image)),
		zap.Int("text_len", len(text)),
	)
	return text, nil
}
