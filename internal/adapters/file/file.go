package file

import (
	"context"
	"convbot/internal/core/domain"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/uuid/v5"
	"github.com/rs/zerolog/log"
)

// MaxDownloadBytes matches the Bot API limit for files a bot may download.
const MaxDownloadBytes = 20 << 20

const tempPrefix = "convbot-"

var ErrFileTooLarge = fmt.Errorf("%w: download limit is %d bytes", domain.ErrFileTooLarge, MaxDownloadBytes)

// DownloadFile returns the byte content of a file on a provided URL, refusing bodies above MaxDownloadBytes.
func DownloadFile(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	res, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error executing request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code on download: %d", res.StatusCode)
	}

	buf, err := io.ReadAll(io.LimitReader(res.Body, MaxDownloadBytes+1))
	if err != nil {
		return nil, fmt.Errorf("error reading response: %w", err)
	}

	if len(buf) > MaxDownloadBytes {
		return nil, ErrFileTooLarge
	}

	return buf, nil
}

// TempPath returns a fresh, unused path in the temp directory with the given extension.
func TempPath(extension string) (string, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return "", err
	}

	if extension != "" && !strings.HasPrefix(extension, ".") {
		extension = "." + extension
	}

	return filepath.Join(os.TempDir(), tempPrefix+id.String()+extension), nil
}

// SaveTempFile saves bytes to a temp location and returns the path.
func SaveTempFile(data []byte, extension string) (string, error) {
	path, err := TempPath(extension)
	if err != nil {
		return "", err
	}

	log.Debug().Int("bytes", len(data)).Str("path", path).Msg("creating temp file")

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("error writing temp file: %w", err)
	}

	return path, nil
}

// GetTempFile retrieves a temporarily stored file by its path, as returned from SaveTempFile().
func GetTempFile(path string) ([]byte, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading temp file: %w", err)
	}

	return buf, nil
}

// RemoveTempFile removes a specified temporary file at the given path and logs success or failure.
func RemoveTempFile(path string) {
	err := os.Remove(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Warn().Str("path", path).Err(err).Msg("could not clean up temp file")
		return
	}
	log.Debug().Str("path", path).Msg("cleaned up temp file")
}
