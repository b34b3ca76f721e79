package utils

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"strings"
	"time"
)

// IsURL reports whether the source should be fetched over http.
func IsURL(src string) bool {
	return strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://")
}

// DownloadFile retrieves the resource at url into a temporary file and
// returns its path. The extension of the remote file is preserved, so the
// caller can still detect the file format.
func DownloadFile(url string) (string, error) {
	client := &http.Client{Timeout: 30 * time.Second}

	res, err := client.Get(url)
	if err != nil {
		return "", fmt.Errorf("unable to download file from URI: %s: %w", url, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unable to download file from URI: %s, status %v", url, res.Status)
	}

	tmpfile, err := os.CreateTemp("", "lowpoly-*"+path.Ext(res.Request.URL.Path))
	if err != nil {
		return "", fmt.Errorf("unable to create temporary file: %w", err)
	}
	defer tmpfile.Close()

	// Copy the response body into the temporary file.
	if _, err = io.Copy(tmpfile, res.Body); err != nil {
		os.Remove(tmpfile.Name())
		return "", fmt.Errorf("unable to copy the source URI into the destination file: %w", err)
	}
	return tmpfile.Name(), nil
}
