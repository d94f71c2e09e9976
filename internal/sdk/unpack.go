package sdk

import (
	"archive/tar"    // For reading .tar archives
	"archive/zip"    // For reading .zip archives
	"compress/bzip2" // For reading .bz2 compressed data
	"compress/gzip"  // For reading .gz compressed data
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/bodgit/sevenzip" // For reading .7z archives
	"github.com/cockroachdb/errors"
	"github.com/spf13/afero"
	"github.com/xi2/xz" // For reading .xz compressed data

	"setup-build-env/internal/logger"
)

// marker is the directory every Steamworks SDK distribution carries its
// prebuilt libraries in. Everything above it in the archive is stripped.
const marker = "redistributable_bin"

// ErrNotSDK is returned for archives without a redistributable_bin directory.
var ErrNotSDK = errors.New("archive does not contain a Steamworks SDK")

// entry is one member of an archive. open is only valid during the walk
// callback that received it.
type entry struct {
	name  string
	mode  fs.FileMode
	isDir bool
	open  func() (io.ReadCloser, error)
}

// Unpacker places an SDK archive into the SDK root.
type Unpacker struct {
	Fs afero.Fs
	// Root is the resolved SDK root directory.
	Root string
	// Force replaces an existing SDK root instead of refusing.
	Force bool
}

// Unpack extracts the archive at src (a path on u.Fs) into u.Root and returns
// the number of files written. Every member is checked before anything is
// written, and the files are staged in a sibling directory that only
// replaces u.Root once extraction has finished. A failed unpack leaves an
// existing root as it was.
func (u Unpacker) Unpack(src string) (int, error) {
	format, err := archiveFormat(src)
	if err != nil {
		return 0, err
	}
	logger.Debug("[DEBUG] compression type is %s\n", format)

	// First pass: locate the directory that holds redistributable_bin and
	// remember every member name for validation.
	prefix := ""
	found := false
	var names []string
	err = walkArchive(u.Fs, src, format, func(e entry) error {
		names = append(names, normalize(e.name))
		if found {
			return nil
		}
		if p, ok := sdkPrefix(e.name); ok {
			prefix, found = p, true
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, errors.WithHint(ErrNotSDK, "download the Steamworks SDK zip from https://partner.steamgames.com/")
	}
	logger.Debug("[DEBUG] SDK prefix inside archive: %q\n", prefix)

	for _, name := range names {
		rel, ok := relative(name, prefix)
		if !ok {
			continue
		}
		if _, err := safeJoin(u.Root, rel); err != nil {
			return 0, err
		}
	}

	exists, _ := afero.Exists(u.Fs, u.Root)
	if exists && !u.Force {
		return 0, errors.WithHint(
			errors.Newf("SDK root %s already exists", u.Root),
			"pass --force to replace it",
		)
	}

	parent := filepath.Dir(u.Root)
	if err := u.Fs.MkdirAll(parent, 0o755); err != nil {
		return 0, errors.Wrapf(err, "creating %s", parent)
	}
	staging, err := afero.TempDir(u.Fs, parent, "."+filepath.Base(u.Root)+"-")
	if err != nil {
		return 0, errors.Wrapf(err, "creating staging directory in %s", parent)
	}
	if err := u.Fs.Chmod(staging, 0o755); err != nil {
		_ = u.Fs.RemoveAll(staging)
		return 0, errors.Wrapf(err, "chmod %s", staging)
	}
	logger.Debug("[DEBUG] staging SDK files in %s\n", staging)

	// Second pass: write everything below the prefix into the staging dir.
	written := 0
	err = walkArchive(u.Fs, src, format, func(e entry) error {
		rel, ok := relative(normalize(e.name), prefix)
		if !ok {
			return nil
		}
		target, err := safeJoin(staging, rel)
		if err != nil {
			return err
		}

		if e.isDir {
			return u.Fs.MkdirAll(target, 0o755)
		}
		if err := u.Fs.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return errors.Wrapf(err, "creating %s", filepath.Dir(target))
		}
		if err := u.writeFile(target, e); err != nil {
			return err
		}
		written++
		return nil
	})
	if err != nil {
		_ = u.Fs.RemoveAll(staging)
		return 0, err
	}

	if err := u.swap(staging, exists); err != nil {
		_ = u.Fs.RemoveAll(staging)
		return 0, err
	}

	logger.Info("✓ Unpacked %d SDK files into %s\n", written, u.Root)
	return written, nil
}

// swap moves the staging directory onto the root. An existing root is
// moved aside first and restored if the final rename fails.
func (u Unpacker) swap(staging string, exists bool) error {
	if !exists {
		if err := u.Fs.Rename(staging, u.Root); err != nil {
			return errors.Wrapf(err, "moving SDK into %s", u.Root)
		}
		return nil
	}

	logger.Warn("⚠ Replacing existing SDK root %s\n", u.Root)
	backup := staging + ".old"
	if err := u.Fs.Rename(u.Root, backup); err != nil {
		return errors.Wrapf(err, "moving %s aside", u.Root)
	}
	if err := u.Fs.Rename(staging, u.Root); err != nil {
		if rerr := u.Fs.Rename(backup, u.Root); rerr != nil {
			logger.Error("✗ Could not restore %s from %s: %v\n", u.Root, backup, rerr)
		}
		return errors.Wrapf(err, "moving SDK into %s", u.Root)
	}
	if err := u.Fs.RemoveAll(backup); err != nil {
		logger.Warn("⚠ Could not remove old SDK copy %s: %v\n", backup, err)
	}
	return nil
}

// relative strips prefix from a normalized member name. Members outside the
// prefix and the prefix directory itself report false.
func relative(name, prefix string) (string, bool) {
	if !strings.HasPrefix(name, prefix) {
		return "", false
	}
	rel := strings.TrimPrefix(name, prefix)
	return rel, rel != ""
}

func (u Unpacker) writeFile(target string, e entry) error {
	perm := e.mode.Perm()
	if perm == 0 {
		perm = 0o644
	}
	out, err := u.Fs.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return errors.Wrapf(err, "creating %s", target)
	}
	defer out.Close()

	rc, err := e.open()
	if err != nil {
		return errors.Wrapf(err, "reading %s from archive", e.name)
	}
	defer rc.Close()

	if _, err := io.Copy(out, rc); err != nil {
		return errors.Wrapf(err, "writing %s", target)
	}
	return nil
}

// archiveFormat picks the reader for src from its extension.
func archiveFormat(src string) (string, error) {
	lower := strings.ToLower(src)
	switch {
	case strings.HasSuffix(lower, ".zip"):
		return "zip", nil
	case strings.HasSuffix(lower, ".7z"):
		return "7z", nil
	case strings.HasSuffix(lower, ".tar.gz"), strings.HasSuffix(lower, ".tgz"):
		return "tar.gz", nil
	case strings.HasSuffix(lower, ".tar.bz2"):
		return "tar.bz2", nil
	case strings.HasSuffix(lower, ".tar.xz"):
		return "tar.xz", nil
	case strings.HasSuffix(lower, ".tar"):
		return "tar", nil
	default:
		return "", errors.Newf("unsupported archive format: %s", src)
	}
}

// sdkPrefix returns the part of name above the redistributable_bin element.
func sdkPrefix(name string) (string, bool) {
	parts := strings.Split(normalize(name), "/")
	for i, part := range parts {
		if part == marker {
			if i == 0 {
				return "", true
			}
			return strings.Join(parts[:i], "/") + "/", true
		}
	}
	return "", false
}

func normalize(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	return strings.TrimPrefix(name, "./")
}

// safeJoin joins rel onto root and rejects paths escaping root.
func safeJoin(root, rel string) (string, error) {
	clean := path.Clean(rel)
	if clean == "." || clean == ".." || strings.HasPrefix(clean, "../") || path.IsAbs(clean) {
		return "", errors.Newf("illegal path in archive: %s", rel)
	}
	return filepath.Join(root, filepath.FromSlash(clean)), nil
}

// walkArchive calls fn for every member of the archive at src in archive order.
func walkArchive(afs afero.Fs, src, format string, fn func(entry) error) error {
	f, err := afs.Open(src)
	if err != nil {
		return errors.Wrapf(err, "opening %s", src)
	}
	defer f.Close()

	switch format {
	case "zip", "7z":
		info, err := f.Stat()
		if err != nil {
			return errors.Wrapf(err, "stat %s", src)
		}
		if format == "zip" {
			return walkZip(f, info.Size(), fn)
		}
		return walk7z(f, info.Size(), fn)
	default:
		return walkTar(f, format, fn)
	}
}

func walkZip(r io.ReaderAt, size int64, fn func(entry) error) error {
	// Insecure names are rejected entry by entry in safeJoin.
	zr, err := zip.NewReader(r, size)
	if err != nil && !errors.Is(err, zip.ErrInsecurePath) {
		return errors.Wrap(err, "reading zip archive")
	}
	for _, zf := range zr.File {
		zf := zf
		if err := fn(entry{
			name:  zf.Name,
			mode:  zf.Mode(),
			isDir: zf.FileInfo().IsDir(),
			open:  func() (io.ReadCloser, error) { return zf.Open() },
		}); err != nil {
			return err
		}
	}
	return nil
}

func walk7z(r io.ReaderAt, size int64, fn func(entry) error) error {
	sr, err := sevenzip.NewReader(r, size)
	if err != nil {
		return errors.Wrap(err, "failed to open 7z archive")
	}
	for _, sf := range sr.File {
		sf := sf
		if err := fn(entry{
			name:  sf.Name,
			mode:  sf.Mode(),
			isDir: sf.FileInfo().IsDir(),
			open:  func() (io.ReadCloser, error) { return sf.Open() },
		}); err != nil {
			return err
		}
	}
	return nil
}

func walkTar(f io.Reader, format string, fn func(entry) error) error {
	var reader io.Reader = f
	switch format {
	case "tar.gz":
		gr, err := gzip.NewReader(f)
		if err != nil {
			return errors.Wrap(err, "reading gzip stream")
		}
		defer gr.Close()
		reader = gr
	case "tar.bz2":
		reader = bzip2.NewReader(f)
	case "tar.xz":
		xzr, err := xz.NewReader(f, 0)
		if err != nil {
			return errors.Wrap(err, "reading xz stream")
		}
		reader = xzr
	}

	tr := tar.NewReader(reader)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			return nil // End of archive
		}
		if err != nil {
			return errors.Wrap(err, "reading tar archive")
		}
		switch hdr.Typeflag {
		case tar.TypeDir, tar.TypeReg:
		default:
			logger.Debug("[DEBUG] Skipping tar entry %s (type %c)\n", hdr.Name, hdr.Typeflag)
			continue
		}
		if err := fn(entry{
			name:  hdr.Name,
			mode:  hdr.FileInfo().Mode(),
			isDir: hdr.Typeflag == tar.TypeDir,
			open:  func() (io.ReadCloser, error) { return io.NopCloser(tr), nil },
		}); err != nil {
			return err
		}
	}
}
