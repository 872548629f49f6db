// Package upload turns small local files into embeddable data URLs.
// Photos and attachments are stored inline on the record rather than on
// disk, so uploads are capped at a size that keeps records manageable.
package upload

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"

	"github.com/gabriel-vasile/mimetype"
)

// MaxSize is the upload cap in bytes.
const MaxSize = 100 * 1024

// ErrTooLarge is returned for files over MaxSize.
var ErrTooLarge = errors.New("file exceeds the 100KB upload limit")

// DataURL reads the file at path and encodes it as a data URL with the
// detected content type.
func DataURL(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("inspecting upload: %w", err)
	}
	if info.Size() > MaxSize {
		return "", ErrTooLarge
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading upload: %w", err)
	}

	mime := mimetype.Detect(data)
	return fmt.Sprintf("data:%s;base64,%s",
		mime.String(), base64.StdEncoding.EncodeToString(data)), nil
}
