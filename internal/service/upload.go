package service

import (
	"LabSite/config"
	"LabSite/internal/storage"
	"LabSite/utils"
	"bytes"
	"fmt"
	"io"
	"mime/multipart"

	"golang.org/x/net/context"
)

// StoreImage uploads one file content-addressed: the key is the digest of
// the bytes, so re-uploading identical content reuses the existing object
// and always yields the same public URL.
func StoreImage(ctx context.Context, data []byte, filename, contentType string) (string, error) {
	if storage.Default == nil {
		return "", fmt.Errorf("storage not initialized")
	}
	digest := utils.HashBytes(data)
	key := utils.BuildObjectKey(digest, filename)
	bucket := config.AppConfig.BucketName

	exists, err := storage.Default.Exists(ctx, bucket, key)
	if err != nil {
		return "", err
	}
	if !exists {
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		err = storage.Default.PutObject(
			ctx,
			bucket,
			key,
			bytes.NewReader(data),
			int64(len(data)),
			storage.PutOptions{ContentType: contentType},
		)
		if err != nil {
			return "", err
		}
	}
	return storage.PublicURL(key), nil
}

// SaveImages stores an upload batch in request order and returns one URL
// per file. Any store failure aborts the whole batch.
func SaveImages(ctx context.Context, files []*multipart.FileHeader) ([]string, error) {
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: no files to upload", ErrValidation)
	}
	if max := config.AppConfig.UploadMaxFiles; max > 0 && len(files) > max {
		return nil, fmt.Errorf("%w: at most %d files per upload", ErrValidation, max)
	}

	urls := make([]string, 0, len(files))
	for _, fh := range files {
		data, contentType, err := readMultipartFile(fh)
		if err != nil {
			return nil, err
		}
		url, err := StoreImage(ctx, data, fh.Filename, contentType)
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}

func readMultipartFile(fh *multipart.FileHeader) ([]byte, string, error) {
	if max := config.AppConfig.UploadMaxBytes; max > 0 && fh.Size > max {
		return nil, "", fmt.Errorf("%w: file %q exceeds %d bytes", ErrValidation, fh.Filename, max)
	}
	src, err := fh.Open()
	if err != nil {
		return nil, "", err
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, "", err
	}
	return data, fh.Header.Get("Content-Type"), nil
}
