package services

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rishen2486/wheels-up-booking-suite/utils"
)

// SaveBase64Image decodes a base64 photo (raw payload or data URI) and
// writes it under the uploads dir. Returns the path to store in the
// item's image_urls list, e.g. "cars/1700000000.jpg".
func SaveBase64Image(b64 string, subdir string) (string, error) {
	ext := ".jpg"
	if strings.HasPrefix(b64, "data:image/png") {
		ext = ".png"
	}
	if idx := strings.Index(b64, "base64,"); idx >= 0 {
		b64 = b64[idx+7:]
	}

	data, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return "", fmt.Errorf("decode base64: %w", err)
	}

	dir := filepath.Join(utils.EnvOrDefault("UPLOAD_DIR", "uploads"), subdir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("mkdir uploads dir: %w", err)
	}

	filename := fmt.Sprintf("%d%s", time.Now().UnixNano(), ext)
	fullpath := filepath.Join(dir, filename)

	if err := os.WriteFile(fullpath, data, 0644); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}

	return filepath.ToSlash(filepath.Join(subdir, filename)), nil
}
