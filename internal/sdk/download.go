package sdk

import (
	"io"
	"net/http"
	"net/url"
	"path"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/afero"

	"setup-build-env/internal/logger"
)

// IsURL reports whether src should be downloaded rather than read from disk.
func IsURL(src string) bool {
	return strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://")
}

// Download fetches rawURL into a new temporary file on afs and returns its
// path. The file keeps the URL's base name so the archive format can still be
// recognized; the caller removes its directory.
func Download(afs afero.Fs, client *http.Client, rawURL string) (string, error) {
	if client == nil {
		client = http.DefaultClient
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", errors.Wrapf(err, "parsing %s", rawURL)
	}

	resp, err := client.Get(rawURL)
	if err != nil {
		return "", errors.Wrapf(err, "failed to GET %s", rawURL)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			logger.Error("[ERROR] Failed to close response body: %s\n", cerr)
		}
	}()
	if resp.StatusCode != http.StatusOK {
		return "", errors.Newf("download of %s failed: HTTP status %d", rawURL, resp.StatusCode)
	}

	dir, err := afero.TempDir(afs, "", "setup-build-env-")
	if err != nil {
		return "", errors.Wrap(err, "creating download directory")
	}
	name := path.Base(u.Path)
	if name == "" || name == "/" || name == "." {
		name = "steamworks_sdk.zip"
	}
	destPath := filepath.Join(dir, name)

	out, err := afs.Create(destPath)
	if err != nil {
		return "", errors.Wrapf(err, "failed to create file %s", destPath)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil {
			logger.Error("[ERROR] Failed to close destination file: %s\n", cerr)
		}
	}()

	n, err := io.Copy(out, resp.Body)
	if err != nil {
		return "", errors.Wrap(err, "failed to write response to file")
	}

	logger.Debug("[DEBUG] Downloaded %d bytes to: %s\n", n, destPath)
	return destPath, nil
}
