package common

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
)

// UploadFile saves a multipart upload under UploadPath with a random name and
// returns that name as the blob link. Callers persist the link; file contents
// are never interpreted.
func UploadFile(file *multipart.FileHeader) (string, error) {
	if err := os.MkdirAll(UploadPath, 0o755); err != nil {
		return "", fmt.Errorf("create upload directory %s: %w", UploadPath, err)
	}

	link := GetUUID() + filepath.Ext(file.Filename)
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open uploaded file: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(UploadPath, link))
	if err != nil {
		return "", fmt.Errorf("create blob file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		_ = os.Remove(dst.Name())
		return "", fmt.Errorf("write blob file: %w", err)
	}

	return link, nil
}

// DeleteFile removes a blob from disk. Missing files are not an error; the
// row pointing at the blob may outlive a manually cleaned upload directory.
func DeleteFile(link string) error {
	err := os.Remove(filepath.Join(UploadPath, link))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
