package client

import (
	"fmt"

	"github.com/otiai10/gosseract/v2"
)

// TesseractClient wraps Tesseract OCR for extracting text from rendered
// report page images.
type TesseractClient struct {
	dataPath string
}

func NewTesseractClient(dataPath string) *TesseractClient {
	return &TesseractClient{
		dataPath: dataPath,
	}
}

// ExtractTextFromImage runs OCR on a single page image file.
func (tc *TesseractClient) ExtractTextFromImage(filePath string) (string, error) {
	c := gosseract.NewClient()
	defer c.Close()

	c.SetTessdataPrefix(tc.dataPath)

	if err := c.SetLanguage("eng"); err != nil {
		return "", fmt.Errorf("failed to set language: %w", err)
	}

	if err := c.SetImage(filePath); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := c.Text()
	if err != nil {
		return "", fmt.Errorf("failed to extract text: %w", err)
	}

	return text, nil
}

// Close performs cleanup. Each extraction owns its own gosseract client,
// so there is nothing long-lived to release yet.
func (tc *TesseractClient) Close() {}
