package ocr

import (
	"context"
	"fmt"

	"github.com/otiai10/gosseract/v2"
)

// TesseractBackend implements Backend with the gosseract client. A fresh
// client per call keeps the cgo handle off the hot path of concurrent
// workers.
type TesseractBackend struct {
	clientFactory func() *gosseract.Client
	tessdataDir   string
	language      string
}

func NewTesseractBackend(tessdataDir, language string) *TesseractBackend {
	if language == "" {
		language = "eng"
	}
	return &TesseractBackend{
		clientFactory: gosseract.NewClient,
		tessdataDir:   tessdataDir,
		language:      language,
	}
}

func (b *TesseractBackend) Recognize(ctx context.Context, pngData []byte) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}

	c := b.clientFactory()
	defer c.Close()

	if b.tessdataDir != "" {
		if err := c.SetTessdataPrefix(b.tessdataDir); err != nil {
			return "", fmt.Errorf("set tessdata prefix: %w", err)
		}
	}
	if err := c.SetLanguage(b.language); err != nil {
		return "", fmt.Errorf("set language: %w", err)
	}
	if err := c.SetImageFromBytes(pngData); err != nil {
		return "", fmt.Errorf("set image: %w", err)
	}
	if err := c.SetWhitelist(CharWhitelist); err != nil {
		return "", fmt.Errorf("set whitelist: %w", err)
	}

	text, err := c.Text()
	if err != nil {
		return "", fmt.Errorf("recognize text: %w", err)
	}
	return text, nil
}
