//
// Tencent is pleased to support the open source community by making trpc-docextract-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-docextract-go is licensed under the Apache License Version 2.0.
//
//

// Package pdf provides the PDF format processor.
package pdf

import (
	"bytes"
	"context"
	"strings"
	"time"

	"github.com/ledongthuc/pdf"

	"trpc.group/trpc-go/trpc-docextract-go/document"
	"trpc.group/trpc-go/trpc-docextract-go/internal/textclean"
	"trpc.group/trpc-go/trpc-docextract-go/processor"
)

var supportedTypes = []string{document.MediaTypePDF}

var supportedExtensions = []string{".pdf"}

// imageMarkers are placeholder fragments some PDF producers leave in the
// text layer where a figure was embedded. Their presence is a best-effort
// signal only.
var imageMarkers = []string{"[image", "[figure", "<image"}

// Processor extracts text and page metadata from PDF documents.
type Processor struct{}

// New creates a new PDF processor.
func New() *Processor { return &Processor{} }

// Name returns the processor identity.
func (p *Processor) Name() string { return "PDFProcessor" }

// SupportedTypes returns the media types this processor declares.
func (p *Processor) SupportedTypes() []string { return supportedTypes }

// CanProcess reports whether the file looks like a PDF by declared type or
// file extension.
func (p *Processor) CanProcess(file document.File) bool {
	return processor.MatchesType(file, supportedTypes) ||
		processor.MatchesExtension(file, supportedExtensions)
}

// ExtractText parses the PDF stream and returns cleaned text. A document
// that parses fine but contains no text yields NO_TEXT_CONTENT, which is
// distinct from a parse failure.
func (p *Processor) ExtractText(ctx context.Context, file document.File) (string, error) {
	text, _, _, err := p.extract(ctx, file)
	return text, err
}

// ExtractWithMetadata parses the PDF stream and returns cleaned text plus
// page count, the embedded-image heuristic and elapsed time.
func (p *Processor) ExtractWithMetadata(ctx context.Context, file document.File) (*document.Result, error) {
	start := time.Now()
	text, pageCount, hasImages, err := p.extract(ctx, file)
	if err != nil {
		return nil, err
	}
	return &document.Result{
		Text: text,
		Metadata: document.Metadata{
			WordCount:      textclean.CountWords(text),
			PageCount:      document.IntPtr(pageCount),
			HasImages:      document.BoolPtr(hasImages),
			ProcessingTime: time.Since(start),
		},
	}, nil
}

func (p *Processor) extract(ctx context.Context, file document.File) (string, int, bool, error) {
	data, err := file.Bytes()
	if err != nil {
		return "", 0, false, document.WrapError(document.CodeReadFailed, err,
			"failed to read file content").WithFile(file)
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", 0, false, document.WrapError(document.CodeExtractionFailed, err,
			"failed to parse PDF document").WithFile(file)
	}

	var raw strings.Builder
	pageCount := reader.NumPage()
	for pageIndex := 1; pageIndex <= pageCount; pageIndex++ {
		select {
		case <-ctx.Done():
			return "", 0, false, ctx.Err()
		default:
		}

		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}
		// Page-level failures are treated as pages without text.
		text, err := page.GetPlainText(nil)
		if err != nil || text == "" {
			continue
		}
		raw.WriteString(text)
		raw.WriteString("\n")
	}

	cleaned := textclean.PDF(raw.String())
	if cleaned == "" {
		return "", 0, false, document.NewError(document.CodeNoTextContent,
			"PDF parsed successfully but contains no extractable text").WithFile(file)
	}
	return cleaned, pageCount, hasImageMarkers(raw.String()), nil
}

// hasImageMarkers scans the raw text layer for figure placeholder fragments.
func hasImageMarkers(raw string) bool {
	lowered := strings.ToLower(raw)
	for _, marker := range imageMarkers {
		if strings.Contains(lowered, marker) {
			return true
		}
	}
	return false
}
