// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package extract

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
	"github.com/rwcarlsen/goexif/exif"

	// Decoders for pixel-size introspection of extracted images.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ImageMode selects the image extraction strategy.
type ImageMode string

const (
	// ImageModeFull reads raw embedded image bytes by cross-reference,
	// preserving the original encoding, and measures pixel dimensions.
	ImageModeFull ImageMode = "full"

	// ImageModeLight reads only page-level image object metadata. No bytes
	// are decoded and no files are written.
	ImageModeLight ImageMode = "light"
)

// imageStrategy is the per-page image extraction step. Implementations
// report recoverable per-image failures as warnings and never abort a page.
type imageStrategy interface {
	extract(pageNr int) ([]ImageInfo, []Warning)
}

// fullImages implements full-fidelity extraction over an optimized pdfcpu
// context: raw encoded bytes per image object, format tag from the stream
// filter, dimensions via image decode-config, optional verbatim persistence.
type fullImages struct {
	ctx    *model.Context
	outDir string
	save   bool
}

func (s *fullImages) extract(pageNr int) ([]ImageInfo, []Warning) {
	images, err := pdfcpu.ExtractPageImages(s.ctx, pageNr, false)
	if err != nil {
		return nil, []Warning{{
			Context: fmt.Sprintf("page %d images", pageNr),
			Message: err.Error(),
		}}
	}
	if len(images) == 0 {
		return nil, nil
	}

	// Map order is not stable; object numbers give a deterministic index.
	objNrs := make([]int, 0, len(images))
	for objNr := range images {
		objNrs = append(objNrs, objNr)
	}
	sort.Ints(objNrs)

	var infos []ImageInfo
	var warnings []Warning
	index := 0
	for _, objNr := range objNrs {
		img := images[objNr]
		index++

		data, err := io.ReadAll(img)
		if err != nil {
			warnings = append(warnings, Warning{
				Context: fmt.Sprintf("page %d image %d", pageNr, index),
				Message: fmt.Sprintf("read image object %d: %v", objNr, err),
			})
			continue
		}

		cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
		if err != nil {
			warnings = append(warnings, Warning{
				Context: fmt.Sprintf("page %d image %d", pageNr, index),
				Message: fmt.Sprintf("decode %s image: %v", img.FileType, err),
			})
			continue
		}

		info := ImageInfo{
			Page:     pageNr,
			Index:    index,
			Format:   img.FileType,
			Width:    cfg.Width,
			Height:   cfg.Height,
			ByteSize: int64(len(data)),
			EXIF:     exifTags(data, img.FileType),
		}

		if s.save {
			path := filepath.Join(s.outDir, fmt.Sprintf("page%d_img%d.%s", pageNr, index, img.FileType))
			if err := os.WriteFile(path, data, 0600); err != nil {
				warnings = append(warnings, Warning{
					Context: fmt.Sprintf("page %d image %d", pageNr, index),
					Message: fmt.Sprintf("save image: %v", err),
				})
				continue
			}
			info.SavedPath = path
		}

		infos = append(infos, info)
	}
	return infos, warnings
}

// exifTags pulls a few common EXIF fields out of a JPEG payload. Images
// without EXIF, and non-JPEG formats, yield nil; this metadata is optional
// and decode problems are not warnings.
func exifTags(data []byte, format string) map[string]string {
	if format != "jpg" && format != "jpeg" {
		return nil
	}
	x, err := exif.Decode(bytes.NewReader(data))
	if err != nil {
		return nil
	}
	tags := make(map[string]string)
	for _, field := range []exif.FieldName{exif.Make, exif.Model, exif.DateTime, exif.Software} {
		if tag, err := x.Get(field); err == nil {
			if v, err := tag.StringVal(); err == nil && v != "" {
				tags[string(field)] = v
			}
		}
	}
	if len(tags) == 0 {
		return nil
	}
	return tags
}

// lightImages implements the metadata-only strategy: image object
// dictionaries are inspected for dimensions and stream length, a
// conventional .png destination path is synthesized, and nothing is
// written to disk. No decoding occurs, so no per-image failure is possible.
type lightImages struct {
	ctx    *model.Context
	outDir string
}

func (s *lightImages) extract(pageNr int) ([]ImageInfo, []Warning) {
	objNrs := pdfcpu.ImageObjNrs(s.ctx, pageNr)
	if len(objNrs) == 0 {
		return nil, nil
	}
	sort.Ints(objNrs)

	var infos []ImageInfo
	for i, objNr := range objNrs {
		index := i + 1
		info := ImageInfo{
			Page:      pageNr,
			Index:     index,
			Format:    "png",
			SavedPath: filepath.Join(s.outDir, fmt.Sprintf("page%d_img%d.png", pageNr, index)),
		}
		if sd, ok := s.streamDict(objNr); ok {
			info.Width = dictInt(sd.Dict, "Width")
			info.Height = dictInt(sd.Dict, "Height")
			info.ByteSize = int64(dictInt(sd.Dict, "Length"))
		}
		infos = append(infos, info)
	}
	return infos, nil
}

func (s *lightImages) streamDict(objNr int) (types.StreamDict, bool) {
	entry, found := s.ctx.Table[objNr]
	if !found || entry == nil || entry.Free {
		return types.StreamDict{}, false
	}
	sd, ok := entry.Object.(types.StreamDict)
	return sd, ok
}

func dictInt(d types.Dict, key string) int {
	obj, found := d.Find(key)
	if !found {
		return 0
	}
	if i, ok := obj.(types.Integer); ok {
		return int(i)
	}
	return 0
}
