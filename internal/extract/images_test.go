// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package extract

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExifTags_NonJPEGIsNil(t *testing.T) {
	assert.Nil(t, exifTags([]byte("not an image"), "png"))
	assert.Nil(t, exifTags([]byte("not an image"), "tiff"))
}

func TestExifTags_InvalidJPEGIsNil(t *testing.T) {
	// EXIF problems are silent; a corrupt payload must not produce tags
	// or an error.
	assert.Nil(t, exifTags([]byte{0xFF, 0xD8, 0x00, 0x01}, "jpg"))
}

func TestImageDecodeConfig_PNG(t *testing.T) {
	// The full-fidelity strategy relies on registered decoders to measure
	// dimensions without a full decode.
	var buf bytes.Buffer
	img := image.NewRGBA(image.Rect(0, 0, 8, 4))
	require.NoError(t, png.Encode(&buf, img))

	cfg, format, err := image.DecodeConfig(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, 8, cfg.Width)
	assert.Equal(t, 4, cfg.Height)
}

func TestImageModeValues(t *testing.T) {
	assert.Equal(t, ImageMode("full"), ImageModeFull)
	assert.Equal(t, ImageMode("light"), ImageModeLight)
}
