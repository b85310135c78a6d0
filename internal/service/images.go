package service

import (
	"encoding/base64"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"heavylingam-backend/internal/config"
)

// ImageIntake converts uploaded files into the data URIs stored on a
// listing. Files are processed strictly in part order and appended by index,
// so the resulting sequence is deterministic with respect to the order the
// user attached them.
type ImageIntake struct {
	maxSize int64
	allowed map[string]bool
}

func NewImageIntake(cfg config.UploadConfig) *ImageIntake {
	allowed := make(map[string]bool, len(cfg.AllowedTypes))
	for _, t := range cfg.AllowedTypes {
		allowed[t] = true
	}
	return &ImageIntake{
		maxSize: cfg.MaxFileSizeBytes(),
		allowed: allowed,
	}
}

// DataURIs reads each file fully, sniffs its content type and encodes it as
// a data URI. The output order matches the input order exactly.
func (in *ImageIntake) DataURIs(files []*multipart.FileHeader) ([]string, error) {
	uris := make([]string, len(files))
	for i, fh := range files {
		uri, err := in.encodeOne(fh)
		if err != nil {
			return nil, fmt.Errorf("image %d (%s): %w", i+1, fh.Filename, err)
		}
		uris[i] = uri
	}
	return uris, nil
}

func (in *ImageIntake) encodeOne(fh *multipart.FileHeader) (string, error) {
	if fh.Size > in.maxSize {
		return "", fmt.Errorf("file exceeds %d byte limit", in.maxSize)
	}

	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, in.maxSize+1))
	if err != nil {
		return "", err
	}
	if int64(len(data)) > in.maxSize {
		return "", fmt.Errorf("file exceeds %d byte limit", in.maxSize)
	}

	contentType := http.DetectContentType(data)
	if !in.allowed[contentType] {
		return "", fmt.Errorf("content type %s not allowed", contentType)
	}

	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
