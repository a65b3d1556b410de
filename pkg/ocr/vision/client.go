package vision

import (
	"context"
	"os"
	"strings"

	vision "cloud.google.com/go/vision/apiv1"
	"cloud.google.com/go/vision/v2/apiv1/visionpb"
	"google.golang.org/api/option"

	"ai-resume-backend/pkg/apperror"
)

const mimePDF = "application/pdf"

// maxPDFPages is a fixed cap: only the first pages of a PDF are annotated.
const maxPDFPages = 5

// Client wraps the Google Cloud Vision annotator. PDFs go through batch
// file annotation, everything else through single-image text detection.
type Client struct {
	annotator *vision.ImageAnnotatorClient
}

func New(ctx context.Context, credentialsFile string) (*Client, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	annotator, err := vision.NewImageAnnotatorClient(ctx, opts...)
	if err != nil {
		return nil, apperror.Wrap(apperror.Extraction, "init vision client", err)
	}
	return &Client{annotator: annotator}, nil
}

func (c *Client) Close() error { return c.annotator.Close() }

func (c *Client) Extract(ctx context.Context, filePath, mimeType string) (string, error) {
	if mimeType == mimePDF {
		return c.extractPDF(ctx, filePath)
	}
	return c.extractImage(ctx, filePath)
}

func (c *Client) extractImage(ctx context.Context, filePath string) (string, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return "", apperror.Wrap(apperror.Extraction, "open uploaded file", err)
	}
	defer f.Close()

	img, err := vision.NewImageFromReader(f)
	if err != nil {
		return "", apperror.Wrap(apperror.Extraction, "read uploaded image", err)
	}
	annotations, err := c.annotator.DetectTexts(ctx, img, nil, 10)
	if err != nil {
		return "", apperror.Wrap(apperror.Extraction, "image text detection failed", err)
	}
	if len(annotations) == 0 {
		return "", nil
	}
	// The first annotation aggregates the full detected text.
	return annotations[0].GetDescription(), nil
}

func (c *Client) extractPDF(ctx context.Context, filePath string) (string, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", apperror.Wrap(apperror.Extraction, "read uploaded file", err)
	}

	pages := make([]int32, 0, maxPDFPages)
	for p := int32(1); p <= maxPDFPages; p++ {
		pages = append(pages, p)
	}
	req := &visionpb.BatchAnnotateFilesRequest{
		Requests: []*visionpb.AnnotateFileRequest{{
			InputConfig: &visionpb.InputConfig{
				MimeType: mimePDF,
				Content:  data,
			},
			Features: []*visionpb.Feature{{Type: visionpb.Feature_DOCUMENT_TEXT_DETECTION}},
			Pages:    pages,
		}},
	}
	resp, err := c.annotator.BatchAnnotateFiles(ctx, req)
	if err != nil {
		return "", apperror.Wrap(apperror.Extraction, "pdf text detection failed", err)
	}
	var parts []string
	for _, fileResp := range resp.GetResponses() {
		for _, pageResp := range fileResp.GetResponses() {
			if text := pageResp.GetFullTextAnnotation().GetText(); text != "" {
				parts = append(parts, text)
			}
		}
	}
	return strings.TrimSpace(strings.Join(parts, "\n")), nil
}
