//
// Tencent is pleased to support the open source community by making trpc-docextract-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-docextract-go is licensed under the Apache License Version 2.0.
//
//

package document

import "strings"

// Media types accepted by the extraction subsystem.
const (
	MediaTypePlainText = "text/plain"
	MediaTypeMarkdown  = "text/markdown"
	MediaTypeCSV       = "text/csv"
	MediaTypeJSON      = "application/json"
	MediaTypeHTML      = "text/html"
	MediaTypePDF       = "application/pdf"
	MediaTypeDocx      = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MediaTypeDoc       = "application/msword"
	MediaTypePNG       = "image/png"
	MediaTypeJPEG      = "image/jpeg"
	MediaTypeWebP      = "image/webp"
)

// extensionMediaTypes maps file extensions to the media type uploads with
// that extension are assumed to carry when no type was declared.
var extensionMediaTypes = map[string]string{
	".txt":      MediaTypePlainText,
	".md":       MediaTypeMarkdown,
	".markdown": MediaTypeMarkdown,
	".csv":      MediaTypeCSV,
	".json":     MediaTypeJSON,
	".html":     MediaTypeHTML,
	".pdf":      MediaTypePDF,
	".docx":     MediaTypeDocx,
	".doc":      MediaTypeDoc,
	".png":      MediaTypePNG,
	".jpg":      MediaTypeJPEG,
	".jpeg":     MediaTypeJPEG,
	".webp":     MediaTypeWebP,
}

// MediaTypeByExtension returns the media type associated with a file
// extension. The extension should include the dot prefix (e.g. ".pdf").
func MediaTypeByExtension(ext string) (string, bool) {
	mediaType, ok := extensionMediaTypes[strings.ToLower(ext)]
	return mediaType, ok
}

// NormalizeMediaType lowercases a declared media type and strips any
// parameters such as "; charset=utf-8".
func NormalizeMediaType(mediaType string) string {
	if i := strings.Index(mediaType, ";"); i >= 0 {
		mediaType = mediaType[:i]
	}
	return strings.ToLower(strings.TrimSpace(mediaType))
}
