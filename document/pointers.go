//
// Tencent is pleased to support the open source community by making
// trpc-docextract-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-docextract-go is licensed under the Apache License Version 2.0.
//
//

package document

// IntPtr returns a pointer to v.
func IntPtr(v int) *int { return &v }

// BoolPtr returns a pointer to v.
func BoolPtr(v bool) *bool { return &v }
