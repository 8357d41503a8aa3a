package imagestore

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrInvalidImage  = errors.New("image must be a base64 encoded data URI")
	ErrImageTooLarge = errors.New("image exceeds maximum allowed size")
)

const MaxImageSize = 10 * 1024 * 1024 // 10 MB

// allowedTypes maps accepted image mime types to file extensions.
var allowedTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// Storage persists image bytes and returns their public URL.
type Storage interface {
	Save(ctx context.Context, key string, data []byte, contentType string) (string, error)
	Delete(ctx context.Context, url string) error
}

// Image is a decoded data URI.
type Image struct {
	Data        []byte
	ContentType string
	Ext         string
}

// DecodeDataURI parses "data:image/<type>;base64,<payload>". The declared type
// must be an accepted image type and must agree with the decoded bytes.
func DecodeDataURI(raw string) (*Image, error) {
	raw = strings.TrimSpace(raw)
	if !strings.HasPrefix(raw, "data:") {
		return nil, ErrInvalidImage
	}
	header, payload, ok := strings.Cut(raw[len("data:"):], ",")
	if !ok || payload == "" {
		return nil, ErrInvalidImage
	}
	mimeType, enc, ok := strings.Cut(header, ";")
	if !ok || enc != "base64" {
		return nil, ErrInvalidImage
	}
	mimeType = strings.ToLower(mimeType)
	if mimeType == "image/jpg" {
		mimeType = "image/jpeg"
	}
	ext, ok := allowedTypes[mimeType]
	if !ok {
		return nil, ErrInvalidImage
	}
	if base64.StdEncoding.DecodedLen(len(payload)) > MaxImageSize {
		return nil, ErrImageTooLarge
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, ErrInvalidImage
	}
	if len(data) == 0 {
		return nil, ErrInvalidImage
	}

	detected := strings.Split(http.DetectContentType(data), ";")[0]
	if detected != mimeType {
		return nil, ErrInvalidImage
	}

	return &Image{Data: data, ContentType: mimeType, Ext: ext}, nil
}

// NewKey builds a unique object key such as "recipes/<uuid>.png".
func NewKey(prefix, ext string) string {
	return fmt.Sprintf("%s/%s%s", strings.Trim(prefix, "/"), uuid.New().String(), ext)
}

// SaveDataURI decodes raw and stores it under prefix.
func SaveDataURI(ctx context.Context, s Storage, prefix, raw string) (string, error) {
	img, err := DecodeDataURI(raw)
	if err != nil {
		return "", err
	}
	return s.Save(ctx, NewKey(prefix, img.Ext), img.Data, img.ContentType)
}
