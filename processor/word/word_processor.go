//
// Tencent is pleased to support the open source community by making trpc-docextract-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-docextract-go is licensed under the Apache License Version 2.0.
//
//

// Package word provides the Word/DOCX format processor.
package word

import (
	"archive/zip"
	"bytes"
	"context"
	"strings"
	"time"

	"github.com/gonfva/docxlib"

	"trpc.group/trpc-go/trpc-docextract-go/document"
	"trpc.group/trpc-go/trpc-docextract-go/internal/textclean"
	"trpc.group/trpc-go/trpc-docextract-go/processor"
)

var supportedTypes = []string{
	document.MediaTypeDocx,
	document.MediaTypeDoc,
}

var supportedExtensions = []string{".docx", ".doc"}

// Processor extracts text and embedded-image metadata from Word documents.
type Processor struct{}

// New creates a new Word processor.
func New() *Processor { return &Processor{} }

// Name returns the processor identity.
func (p *Processor) Name() string { return "WordProcessor" }

// SupportedTypes returns the media types this processor declares.
func (p *Processor) SupportedTypes() []string { return supportedTypes }

// CanProcess reports whether the file looks like a Word document by declared
// type or file extension.
func (p *Processor) CanProcess(file document.File) bool {
	return processor.MatchesType(file, supportedTypes) ||
		processor.MatchesExtension(file, supportedExtensions)
}

// ExtractText parses the document and returns cleaned text.
func (p *Processor) ExtractText(ctx context.Context, file document.File) (string, error) {
	data, err := file.Bytes()
	if err != nil {
		return "", document.WrapError(document.CodeReadFailed, err,
			"failed to read file content").WithFile(file)
	}
	return p.extractText(ctx, file, data)
}

// ExtractWithMetadata parses the document and additionally inspects the
// OOXML package for embedded media to set HasImages, a structural signal
// unavailable from the text alone.
func (p *Processor) ExtractWithMetadata(ctx context.Context, file document.File) (*document.Result, error) {
	start := time.Now()
	data, err := file.Bytes()
	if err != nil {
		return nil, document.WrapError(document.CodeReadFailed, err,
			"failed to read file content").WithFile(file)
	}

	text, err := p.extractText(ctx, file, data)
	if err != nil {
		return nil, err
	}

	meta := document.Metadata{
		WordCount:      textclean.CountWords(text),
		ProcessingTime: time.Since(start),
	}
	if hasImages, ok := containsEmbeddedMedia(data); ok {
		meta.HasImages = document.BoolPtr(hasImages)
	}
	return &document.Result{Text: text, Metadata: meta}, nil
}

func (p *Processor) extractText(ctx context.Context, file document.File, data []byte) (string, error) {
	doc, err := docxlib.Parse(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", document.WrapError(document.CodeExtractionFailed, err,
			"failed to parse Word document").WithFile(file)
	}

	var raw strings.Builder
	for _, para := range doc.Paragraphs() {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
		}

		var line strings.Builder
		for _, child := range para.Children() {
			if child.Run != nil && child.Run.Text != nil {
				line.WriteString(child.Run.Text.Text)
			}
		}
		raw.WriteString(line.String())
		raw.WriteString("\n")
	}

	return textclean.Word(raw.String()), nil
}

// containsEmbeddedMedia reports whether the OOXML package carries entries
// under word/media/, the location Word stores embedded images. The second
// return value is false when the package cannot be opened as a zip, in which
// case the signal is unavailable.
func containsEmbeddedMedia(data []byte) (bool, bool) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return false, false
	}
	for _, f := range zr.File {
		if strings.HasPrefix(f.Name, "word/media/") {
			return true, true
		}
	}
	return false, true
}
