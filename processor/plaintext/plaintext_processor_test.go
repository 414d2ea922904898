//
// Tencent is pleased to support the open source community by making trpc-docextract-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-docextract-go is licensed under the Apache License Version 2.0.
//
//

package plaintext

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trpc.group/trpc-go/trpc-docextract-go/document"
)

func TestProcessor_CanProcess(t *testing.T) {
	p := New()
	tests := []struct {
		name      string
		fileName  string
		mediaType string
		want      bool
	}{
		{"plain text", "a.txt", document.MediaTypePlainText, true},
		{"markdown", "a.md", document.MediaTypeMarkdown, true},
		{"csv", "a.csv", document.MediaTypeCSV, true},
		{"json", "a.json", document.MediaTypeJSON, true},
		{"html by type", "a.html", document.MediaTypeHTML, true},
		{"type with charset", "a.txt", "text/plain; charset=utf-8", true},
		{"extension fallback", "a.markdown", "application/octet-stream", true},
		{"no html extension fallback", "a.html", "application/octet-stream", false},
		{"pdf", "a.pdf", document.MediaTypePDF, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file := document.NewFile(tt.fileName, tt.mediaType, []byte("x"))
			assert.Equal(t, tt.want, p.CanProcess(file))
		})
	}
}

func TestProcessor_ExtractText(t *testing.T) {
	p := New()
	file := document.NewFile("greeting.txt", document.MediaTypePlainText, []byte("hello  world"))

	text, err := p.ExtractText(context.Background(), file)
	require.NoError(t, err)
	assert.Equal(t, "hello world", text)
}

func TestProcessor_ExtractText_WhitespaceOnly(t *testing.T) {
	p := New()
	file := document.NewFile("blank.txt", document.MediaTypePlainText, []byte("  \n\t \n"))

	_, err := p.ExtractText(context.Background(), file)
	require.Error(t, err)
	assert.Equal(t, document.CodeEmptyFile, document.CodeOf(err))
}

func TestProcessor_ExtractText_UTF16BOM(t *testing.T) {
	p := New()
	// "hi" encoded as UTF-16LE with BOM.
	data := []byte{0xFF, 0xFE, 'h', 0x00, 'i', 0x00}
	file := document.NewFile("bom.txt", document.MediaTypePlainText, data)

	text, err := p.ExtractText(context.Background(), file)
	require.NoError(t, err)
	assert.Equal(t, "hi", text)
}

func TestProcessor_ExtractWithMetadata(t *testing.T) {
	p := New()
	file := document.NewFile("doc.txt", document.MediaTypePlainText, []byte("one two  three"))

	result, err := p.ExtractWithMetadata(context.Background(), file)
	require.NoError(t, err)
	assert.Equal(t, "one two three", result.Text)
	assert.Equal(t, 3, result.Metadata.WordCount)
	assert.Nil(t, result.Metadata.PageCount)
	assert.Nil(t, result.Metadata.HasImages)
}

func TestProcessor_MarkdownImageMetadata(t *testing.T) {
	p := New()
	tests := []struct {
		name    string
		content string
		want    bool
	}{
		{"with image", "# Title\n\n![logo](logo.png)\n", true},
		{"without image", "# Title\n\nplain [link](https://example.com)\n", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file := document.NewFile("doc.md", document.MediaTypeMarkdown, []byte(tt.content))
			result, err := p.ExtractWithMetadata(context.Background(), file)
			require.NoError(t, err)
			require.NotNil(t, result.Metadata.HasImages)
			assert.Equal(t, tt.want, *result.Metadata.HasImages)
		})
	}
}

func TestProcessor_JSONPreserved(t *testing.T) {
	p := New()
	content := "{\n  \"key\": \"value\"\n}"
	file := document.NewFile("data.json", document.MediaTypeJSON, []byte(content))

	text, err := p.ExtractText(context.Background(), file)
	require.NoError(t, err)
	assert.Contains(t, text, "\"key\": \"value\"")
}
