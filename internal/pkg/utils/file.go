package utils

import (
	"dentaflow-service/internal/pkg/constvars"
	"io"
	"net/http"
	"path/filepath"
	"strings"
)

var imageExtensions = map[string]string{
	constvars.MIMEImagePNG:  ".png",
	constvars.MIMEImageJPEG: ".jpg",
}

// SniffContentType reads the head of the file to detect its type and rewinds it.
func SniffContentType(file io.ReadSeeker) (string, error) {
	head := make([]byte, 512)
	n, err := file.Read(head)
	if err != nil && err != io.EOF {
		return "", err
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", err
	}
	return http.DetectContentType(head[:n]), nil
}

// ImageExtension returns the object extension for an accepted image type.
func ImageExtension(contentType string) (string, bool) {
	ext, ok := imageExtensions[contentType]
	return ext, ok
}

// MedicalImageExtension accepts png and jpeg, plus DICOM files recognised by name.
func MedicalImageExtension(contentType, fileName string) (string, string, bool) {
	if ext, ok := ImageExtension(contentType); ok {
		return contentType, ext, true
	}
	if strings.EqualFold(filepath.Ext(fileName), ".dcm") {
		return constvars.MIMEApplicationDICOM, ".dcm", true
	}
	return "", "", false
}
