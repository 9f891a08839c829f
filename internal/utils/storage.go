package utils

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const (
	UploadBasePath = "./uploads"

	// MaxUploadSize caps photo uploads at 5 MiB.
	MaxUploadSize = 5 * 1024 * 1024
)

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

func InitLocalStorage() error {
	if err := os.MkdirAll(UploadBasePath, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %v", UploadBasePath, err)
	}
	return nil
}

// ValidateUpload checks the extension allow-list and the size cap
// before anything touches disk or S3.
func ValidateUpload(file *multipart.FileHeader) error {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExtensions[ext] {
		return fmt.Errorf("file type %s is not allowed", ext)
	}
	if file.Size > MaxUploadSize {
		return fmt.Errorf("file too large (max %d MB)", MaxUploadSize/(1024*1024))
	}
	return nil
}

func UploadToLocal(file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open file: %v", err)
	}
	defer src.Close()

	ext := strings.ToLower(filepath.Ext(file.Filename))
	filename := uuid.New().String() + ext

	fullPath := filepath.Join(UploadBasePath, filename)

	dst, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %v", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to save file: %v", err)
	}

	return "/uploads/" + filename, nil
}

func DeleteFromLocal(fileURL string) error {
	if !strings.HasPrefix(fileURL, "/uploads/") {
		return fmt.Errorf("file path outside uploads directory")
	}

	// Only the basename is trusted; anything else in the URL is dropped
	// so a crafted path cannot escape the uploads directory.
	fullPath := filepath.Join(UploadBasePath, filepath.Base(fileURL))

	if _, err := os.Stat(fullPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", fileURL)
	}

	if err := os.Remove(fullPath); err != nil {
		return fmt.Errorf("failed to delete file: %v", err)
	}

	return nil
}
