package ocr

import "context"

// Extractor is the port for the OCR provider: it turns an uploaded binary
// (image or PDF) into plain text. Extraction never deletes the input file;
// cleanup belongs to the caller on every path.
type Extractor interface {
	Extract(ctx context.Context, filePath, mimeType string) (string, error)
}
