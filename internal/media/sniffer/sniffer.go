// Package sniffer detects product-image formats from file content. The
// declared Content-Type is never trusted on its own.
package sniffer

import (
	"bytes"
	"errors"
	"net/http"
	"strings"
)

type ImageType string

const (
	TypeJPEG ImageType = "jpeg"
	TypePNG  ImageType = "png"
	TypeGIF  ImageType = "gif"
	TypeWEBP ImageType = "webp"
	TypeSVG  ImageType = "svg"
)

// ErrUnknownType means the payload is not one of the accepted image formats
// (JPG, PNG, GIF, SVG, WEBP).
var ErrUnknownType = errors.New("unknown image type")

type Result struct {
	Type ImageType
	MIME string
}

func DetectHead(head []byte) (Result, error) {
	if len(head) == 0 {
		return Result{}, ErrUnknownType
	}

	if isJPEG(head) {
		return Result{Type: TypeJPEG, MIME: "image/jpeg"}, nil
	}
	if isPNG(head) {
		return Result{Type: TypePNG, MIME: "image/png"}, nil
	}
	if isGIF(head) {
		return Result{Type: TypeGIF, MIME: "image/gif"}, nil
	}
	if isWEBP(head) {
		return Result{Type: TypeWEBP, MIME: "image/webp"}, nil
	}
	if isSVG(head) {
		return Result{Type: TypeSVG, MIME: "image/svg+xml"}, nil
	}

	return Result{}, ErrUnknownType
}

func isJPEG(head []byte) bool {
	return len(head) > 3 &&
		head[0] == 0xff &&
		head[1] == 0xd8 &&
		head[2] == 0xff
}

func isPNG(head []byte) bool {
	pngMagic := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}
	return len(head) >= len(pngMagic) && bytes.Equal(head[:len(pngMagic)], pngMagic)
}

func isGIF(head []byte) bool {
	return len(head) >= 6 && (bytes.Equal(head[:6], []byte("GIF87a")) || bytes.Equal(head[:6], []byte("GIF89a")))
}

func isWEBP(head []byte) bool {
	return len(head) >= 12 &&
		bytes.Equal(head[:4], []byte("RIFF")) &&
		bytes.Equal(head[8:12], []byte("WEBP"))
}

func isSVG(head []byte) bool {
	trimmed := strings.TrimSpace(string(head))
	return strings.HasPrefix(trimmed, "<svg") || strings.HasPrefix(trimmed, "<?xml")
}

func MimeTypeFromHTTP(header http.Header) string {
	contentType := header.Get("Content-Type")
	if contentType == "" {
		return ""
	}
	if idx := strings.Index(contentType, ";"); idx >= 0 {
		return strings.TrimSpace(contentType[:idx])
	}
	return strings.TrimSpace(contentType)
}
