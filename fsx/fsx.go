// Package fsx provides a small file handle bound to a normalized absolute
// path, with read, write, append, rename and permission helpers.
package fsx

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
)

// File is a handle bound to one absolute, lexically cleaned path. The zero
// value is not usable; construct with New. Methods touch the filesystem on
// every call, so a handle stays valid across external changes to the file.
type File struct {
	path string
}

// New binds a handle to path. A relative path is resolved against the
// current working directory and the result is lexically cleaned. The file
// itself is not created or opened.
func New(path string) (*File, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	return &File{path: abs}, nil
}

// Path reports the absolute path the handle is bound to.
func (f *File) Path() string { return f.path }

// Exists reports whether anything is present at the path.
func (f *File) Exists() bool {
	_, err := os.Stat(f.path)
	return err == nil
}

// Read returns the full file contents as a string.
func (f *File) Read() (string, error) {
	b, err := os.ReadFile(f.path)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Write replaces the file contents with data, creating the file and any
// missing parent directories.
func (f *File) Write(data string) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(f.path, []byte(data), 0o644)
}

// Append adds data to the end of the file, creating it when missing.
// Unlike Write, missing parent directories are an error.
func (f *File) Append(data string) error {
	fh, err := os.OpenFile(f.path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o644)
	if err != nil {
		return err
	}
	_, werr := fh.WriteString(data)
	cerr := fh.Close()
	if werr != nil {
		return werr
	}
	return cerr
}

// Delete removes the file. A missing file is not an error.
func (f *File) Delete() error {
	err := os.Remove(f.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Rename moves the file to newPath and rebinds the handle. A relative
// newPath is resolved against the current parent directory, so
// Rename("renamed.txt") keeps the file where it is. Missing parent
// directories of the destination are created. On failure the handle keeps
// its old path.
func (f *File) Rename(newPath string) error {
	dst := newPath
	if !filepath.IsAbs(dst) {
		dst = filepath.Join(filepath.Dir(f.path), dst)
	}
	dst = filepath.Clean(dst)
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	if err := os.Rename(f.path, dst); err != nil {
		return err
	}
	f.path = dst
	return nil
}

// Stat returns the file metadata.
func (f *File) Stat() (fs.FileInfo, error) {
	return os.Stat(f.path)
}

// Mode reports the permission bits as octal text, e.g. "644".
func (f *File) Mode() (string, error) {
	info, err := os.Stat(f.path)
	if err != nil {
		return "", err
	}
	return strconv.FormatUint(uint64(info.Mode().Perm()), 8), nil
}

// Chmod sets the permission bits from octal text such as "755".
func (f *File) Chmod(mode string) error {
	bits, err := strconv.ParseUint(mode, 8, 32)
	if err != nil || bits > 0o777 {
		return fmt.Errorf("fsx: invalid mode %q", mode)
	}
	return os.Chmod(f.path, fs.FileMode(bits))
}

// DirSize walks dir recursively and sums the sizes of all non-directory
// entries.
func DirSize(dir string) (int64, error) {
	var total int64
	err := filepath.WalkDir(dir, func(_ string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		total += info.Size()
		return nil
	})
	if err != nil {
		return 0, err
	}
	return total, nil
}
