// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package pdfmeta reads document-level PDF metadata without a full parse:
// header version, Info dictionary fields, page count, and encryption flag.
// It works on the raw bytes so it stays usable even for documents the
// structural parsers reject.
package pdfmeta

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// Info holds document-level PDF metadata.
type Info struct {
	Filename  string
	FileSize  int64
	Version   string
	Title     string
	Author    string
	Subject   string
	Keywords  string
	Creator   string
	Producer  string
	PageCount int
	Encrypted bool
}

var (
	headerPattern  = regexp.MustCompile(`%PDF-(\d+\.\d+)`)
	infoRefPattern = regexp.MustCompile(`/Info\s+(\d+)\s+\d+\s+R`)
	pagePattern    = regexp.MustCompile(`/Type\s*/Page[^s]`)
	countPattern   = regexp.MustCompile(`/Count\s+(\d+)`)
	encryptPattern = regexp.MustCompile(`/Encrypt\s+\d+\s+\d+\s+R`)
)

// Extract reads metadata from the PDF at path.
func Extract(path string) (*Info, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("file error: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}

	info := Parse(data)
	info.Filename = filepath.Base(path)
	info.FileSize = stat.Size()
	return info, nil
}

// Parse extracts metadata from raw PDF bytes.
func Parse(data []byte) *Info {
	info := &Info{
		Version:   version(data),
		PageCount: countPages(data),
		Encrypted: encryptPattern.Match(data),
	}

	dict := infoDictionary(data)
	info.Title = stringField(dict, "Title")
	info.Author = stringField(dict, "Author")
	info.Subject = stringField(dict, "Subject")
	info.Keywords = stringField(dict, "Keywords")
	info.Creator = stringField(dict, "Creator")
	info.Producer = stringField(dict, "Producer")

	return info
}

// version reads the %PDF-x.y header, checking only the first kilobyte.
func version(data []byte) string {
	size := len(data)
	if size > 1024 {
		size = 1024
	}
	matches := headerPattern.FindSubmatch(data[:size])
	if len(matches) >= 2 {
		return string(matches[1])
	}
	return "Unknown"
}

// infoDictionary locates the Info dictionary body via its trailer reference.
func infoDictionary(data []byte) string {
	matches := infoRefPattern.FindSubmatch(data)
	if len(matches) < 2 {
		return ""
	}
	objNr := string(matches[1])
	objPattern := regexp.MustCompile(`(?s)` + objNr + `\s+\d+\s+obj\s*<<(.*?)>>`)
	objMatches := objPattern.FindSubmatch(data)
	if len(objMatches) < 2 {
		return ""
	}
	return string(objMatches[1])
}

// stringField pulls one field value from the Info dictionary, handling
// literal strings, hex strings, and name values.
func stringField(dict, field string) string {
	if dict == "" {
		return ""
	}

	pattern := regexp.MustCompile(`/` + field + `\s*\(((?:\\.|[^\\()])*)\)`)
	if matches := pattern.FindStringSubmatch(dict); len(matches) >= 2 {
		value := matches[1]
		value = strings.ReplaceAll(value, `\)`, ")")
		value = strings.ReplaceAll(value, `\(`, "(")
		value = strings.ReplaceAll(value, `\\`, `\`)
		return value
	}

	hexPattern := regexp.MustCompile(`/` + field + `\s*<([0-9A-Fa-f]+)>`)
	if matches := hexPattern.FindStringSubmatch(dict); len(matches) >= 2 {
		return decodeHex(matches[1])
	}

	namePattern := regexp.MustCompile(`/` + field + `\s*/([^/\s<>()\[\]]+)`)
	if matches := namePattern.FindStringSubmatch(dict); len(matches) >= 2 {
		return matches[1]
	}

	return ""
}

func decodeHex(hexStr string) string {
	var result strings.Builder
	for i := 0; i+1 < len(hexStr); i += 2 {
		b, err := strconv.ParseUint(hexStr[i:i+2], 16, 8)
		if err != nil {
			continue
		}
		result.WriteByte(byte(b))
	}
	return result.String()
}

// countPages counts /Type /Page objects, falling back to the page tree's
// /Count entry when none are found in clear text.
func countPages(data []byte) int {
	if matches := pagePattern.FindAllSubmatch(data, -1); len(matches) > 0 {
		return len(matches)
	}
	if matches := countPattern.FindSubmatch(data); len(matches) >= 2 {
		if count, err := strconv.Atoi(string(matches[1])); err == nil {
			return count
		}
	}
	return 0
}
