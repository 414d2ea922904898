//
// Tencent is pleased to support the open source community by making trpc-docextract-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-docextract-go is licensed under the Apache License Version 2.0.
//
//

// Package textclean provides the text normalization pipelines shared by the
// format processors. Every pipeline is idempotent: cleaning its own output a
// second time is a no-op.
package textclean

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	horizontalRun  = regexp.MustCompile(`[ \t]+`)
	paragraphBreak = regexp.MustCompile(`\n\s*\n`)
	artifactRun    = regexp.MustCompile(`[|_\-]{4,}`)
	blankRunAny    = regexp.MustCompile(`\n{3,}`)
	blankRunLong   = regexp.MustCompile(`\n{5,}`)
	whitespaceRun  = regexp.MustCompile(`\s+`)
)

// normalizeLineEndings converts CRLF and bare CR line endings to LF and
// drops form-feed characters.
func normalizeLineEndings(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.ReplaceAll(s, "\f", "")
}

// trimLines collapses runs of horizontal whitespace within each line and
// strips trailing whitespace per line.
func trimLines(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(horizontalRun.ReplaceAllString(line, " "), " ")
	}
	return strings.Join(lines, "\n")
}

// PDF collapses whitespace runs to single spaces, strips form-feed and
// carriage-return artifacts, converts single line breaks to spaces while
// preserving paragraph breaks, and removes long pipe/underscore/dash runs
// left by table rules.
func PDF(s string) string {
	s = normalizeLineEndings(s)
	s = artifactRun.ReplaceAllString(s, "")

	paragraphs := paragraphBreak.Split(s, -1)
	cleaned := paragraphs[:0]
	for _, p := range paragraphs {
		p = strings.TrimSpace(whitespaceRun.ReplaceAllString(p, " "))
		if p != "" {
			cleaned = append(cleaned, p)
		}
	}
	return strings.Join(cleaned, "\n\n")
}

// Word normalizes line endings, collapses horizontal whitespace, strips
// trailing whitespace per line and caps newline runs at one blank line.
func Word(s string) string {
	s = normalizeLineEndings(s)
	s = trimLines(s)
	s = blankRunAny.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}

// Plain is the conservative pipeline for the plain-text family: it keeps
// paragraph structure, only normalizing line endings, collapsing horizontal
// whitespace, trimming trailing whitespace per line and capping blank-line
// runs at two blank lines.
func Plain(s string) string {
	s = normalizeLineEndings(s)
	s = trimLines(s)
	s = blankRunLong.ReplaceAllString(s, "\n\n\n")
	return strings.TrimSpace(s)
}

// OCR strips characters outside a conservative printable set, collapses
// whitespace and normalizes blank-line runs. Recognition output tends to
// contain stray control and symbol characters.
func OCR(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == '\n' || r == '\t' || r == ' ':
			b.WriteRune(r)
		case unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsPunct(r):
			b.WriteRune(r)
		case r == '\r' || r == '\f':
			b.WriteRune('\n')
		}
	}
	s = trimLines(b.String())
	s = blankRunAny.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}

// CountWords counts non-empty whitespace-delimited tokens.
func CountWords(s string) int {
	return len(strings.Fields(s))
}
