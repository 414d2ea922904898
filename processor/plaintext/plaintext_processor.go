//
// Tencent is pleased to support the open source community by making trpc-docextract-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-docextract-go is licensed under the Apache License Version 2.0.
//
//

// Package plaintext provides the processor for the plain-text family:
// plain text, Markdown, CSV, JSON and HTML treated as text.
package plaintext

import (
	"context"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	gmtext "github.com/yuin/goldmark/text"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"trpc.group/trpc-go/trpc-docextract-go/document"
	"trpc.group/trpc-go/trpc-docextract-go/internal/textclean"
	"trpc.group/trpc-go/trpc-docextract-go/processor"
)

var supportedTypes = []string{
	document.MediaTypePlainText,
	document.MediaTypeMarkdown,
	document.MediaTypeCSV,
	document.MediaTypeJSON,
	document.MediaTypeHTML,
}

// supportedExtensions is the filename fallback for loosely-typed uploads.
// HTML is accepted by declared type only.
var supportedExtensions = []string{".txt", ".md", ".markdown", ".csv", ".json"}

var markdownExtensions = []string{".md", ".markdown"}

// Processor handles the plain-text family with a conservative cleaning
// pipeline that preserves intentional formatting.
type Processor struct{}

// New creates a new plain-text processor.
func New() *Processor { return &Processor{} }

// Name returns the processor identity.
func (p *Processor) Name() string { return "PlainTextProcessor" }

// SupportedTypes returns the media types this processor declares.
func (p *Processor) SupportedTypes() []string { return supportedTypes }

// CanProcess reports whether the file belongs to the plain-text family by
// declared type or file extension.
func (p *Processor) CanProcess(file document.File) bool {
	return processor.MatchesType(file, supportedTypes) ||
		processor.MatchesExtension(file, supportedExtensions)
}

// ExtractText decodes and cleans the content. Content that reduces to only
// whitespace yields EMPTY_FILE.
func (p *Processor) ExtractText(ctx context.Context, file document.File) (string, error) {
	text, err := p.extract(file)
	return text, err
}

// ExtractWithMetadata additionally flags HasImages for Markdown files by
// walking the parsed document for image nodes.
func (p *Processor) ExtractWithMetadata(ctx context.Context, file document.File) (*document.Result, error) {
	start := time.Now()
	text, err := p.extract(file)
	if err != nil {
		return nil, err
	}

	meta := document.Metadata{
		WordCount:      textclean.CountWords(text),
		ProcessingTime: time.Since(start),
	}
	if isMarkdown(file) {
		meta.HasImages = document.BoolPtr(markdownHasImages(text))
	}
	return &document.Result{Text: text, Metadata: meta}, nil
}

func (p *Processor) extract(file document.File) (string, error) {
	data, err := file.Bytes()
	if err != nil {
		return "", document.WrapError(document.CodeReadFailed, err,
			"failed to read file content").WithFile(file)
	}

	decoded, err := decode(data)
	if err != nil {
		return "", document.WrapError(document.CodeExtractionFailed, err,
			"failed to decode text content").WithFile(file)
	}

	cleaned := textclean.Plain(decoded)
	if cleaned == "" {
		return "", document.NewError(document.CodeEmptyFile,
			"file contains only whitespace").WithFile(file)
	}
	return cleaned, nil
}

// decode interprets the content as UTF-8, honoring a UTF-8 or UTF-16 byte
// order mark when present. Plain ASCII and UTF-8 pass through unchanged.
func decode(data []byte) (string, error) {
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	decoded, _, err := transform.Bytes(decoder, data)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}

func isMarkdown(file document.File) bool {
	return processor.MatchesType(file, []string{document.MediaTypeMarkdown}) ||
		processor.MatchesExtension(file, markdownExtensions)
}

// markdownHasImages reports whether the Markdown source references images.
func markdownHasImages(source string) bool {
	root := goldmark.New().Parser().Parse(gmtext.NewReader([]byte(source)))
	found := false
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering && n.Kind() == ast.KindImage {
			found = true
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})
	return found
}
