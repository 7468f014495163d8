// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package extract

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExtract_MissingFile(t *testing.T) {
	dir := t.TempDir()
	imageDir := filepath.Join(dir, "images")

	_, err := Extract(filepath.Join(dir, "does-not-exist.pdf"), Options{
		SaveImages: true,
		ImageDir:   imageDir,
	})
	if err == nil {
		t.Fatal("expected error for nonexistent input file")
	}

	// A failed open must leave no artifacts behind.
	if _, statErr := os.Stat(imageDir); !os.IsNotExist(statErr) {
		t.Error("image directory should not be created when the source cannot be opened")
	}
}

func TestExtract_NotAPDF(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plain.txt")
	if err := os.WriteFile(path, []byte("just text, not a PDF"), 0600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	if _, err := Extract(path, Options{}); err == nil {
		t.Fatal("expected error for a non-PDF input")
	}
}

func TestOptionsDefaults(t *testing.T) {
	var opts Options
	opts.applyDefaults()

	if opts.ImageDir != DefaultImageDir {
		t.Errorf("ImageDir = %q, want %q", opts.ImageDir, DefaultImageDir)
	}
	if opts.Mode != ImageModeFull {
		t.Errorf("Mode = %q, want %q", opts.Mode, ImageModeFull)
	}
}
