// SPDX-License-Identifier: MIT

package mrio

import (
	"archive/zip"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Release file names.
const (
	fileZ    = "Z.txt"
	fileA    = "A.txt"
	fileY    = "Y.txt"
	fileX    = "x.txt"
	fileF    = "F.txt"
	fileS    = "S.txt"
	fileFY   = "F_Y.txt"
	fileSY   = "S_Y.txt"
	fileUnit = "unit.txt"
)

// ParseExiobase3 reads an EXIOBASE 3 release from a directory or a .zip
// archive. The IO root (the folder holding A.txt or Z.txt) may sit at the
// top or one or more levels down, as in IOT_2022_pxp.zip.
//
// Errors:
//   - ErrDatasetNotFound when path does not exist.
//   - ErrInvalidLayout for unsupported files or malformed content.
func ParseExiobase3(p string, opts ...Option) (*System, error) {
	info, err := os.Stat(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s: %v", ErrDatasetNotFound, p, err)
		}
		return nil, fmt.Errorf("stat %s: %w", p, err)
	}
	if info.IsDir() {
		return ParseFS(os.DirFS(p), opts...)
	}
	if !strings.EqualFold(filepath.Ext(p), ".zip") {
		return nil, fmt.Errorf("%w: %s is neither a directory nor a .zip archive", ErrInvalidLayout, p)
	}
	zr, err := zip.OpenReader(p)
	if err != nil {
		return nil, fmt.Errorf("%w: open archive %s: %v", ErrInvalidLayout, p, err)
	}
	defer zr.Close()

	return ParseFS(zr, opts...)
}

// ParseFS reads an EXIOBASE 3 release from any fs.FS.
func ParseFS(fsys fs.FS, opts ...Option) (*System, error) {
	o := gatherOptions(opts...)

	root, err := findRoot(fsys)
	if err != nil {
		return nil, err
	}
	sys := NewSystem()

	if sys.Z, err = loadTable(fsys, root, fileZ, NameZ, layoutIndustry); err != nil {
		return nil, err
	}
	if sys.A, err = loadTable(fsys, root, fileA, NameA, layoutIndustry); err != nil {
		return nil, err
	}
	if o.finalDemand {
		if sys.Y, err = loadTable(fsys, root, fileY, NameY, layoutDemand); err != nil {
			return nil, err
		}
	}
	if sys.X, err = loadSeries(fsys, root, fileX, NameX, layoutOutput); err != nil {
		return nil, err
	}

	entries, err := fs.ReadDir(fsys, root)
	if err != nil {
		return nil, fmt.Errorf("%w: list %s: %v", ErrInvalidLayout, root, err)
	}
	for _, entry := range entries { // ReadDir returns entries sorted by name
		if !entry.IsDir() {
			continue
		}
		dir := path.Join(root, entry.Name())
		if !exists(fsys, dir, fileF) && !exists(fsys, dir, fileS) {
			continue
		}
		sys.noteAvailable(entry.Name())
		if !o.wantExtension(entry.Name()) {
			continue
		}
		ext, err := loadExtension(fsys, dir, entry.Name(), o)
		if err != nil {
			return nil, err
		}
		sys.AddExtension(ext)
	}

	return sys, nil
}

// findRoot returns the first directory, in walk order, holding A.txt or Z.txt.
func findRoot(fsys fs.FS) (string, error) {
	var root string
	errFound := errors.New("found")
	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() && (exists(fsys, p, fileA) || exists(fsys, p, fileZ)) {
			root = p
			return errFound
		}
		return nil
	})
	if err != nil && !errors.Is(err, errFound) {
		return "", fmt.Errorf("%w: %v", ErrInvalidLayout, err)
	}
	if root == "" {
		return "", fmt.Errorf("%w: no folder contains %s or %s", ErrInvalidLayout, fileA, fileZ)
	}

	return root, nil
}

func loadExtension(fsys fs.FS, dir, name string, o options) (*Extension, error) {
	ext := NewExtension(name)
	files := []struct {
		file, matrix string
		lay          layout
		finalDemand  bool
	}{
		{fileF, MatrixF, layoutStressor, false},
		{fileS, MatrixS, layoutStressor, false},
		{fileFY, MatrixFY, layoutStressFD, true},
		{fileSY, MatrixSY, layoutStressFD, true},
	}
	for _, f := range files {
		if f.finalDemand && !o.finalDemand {
			continue
		}
		t, err := loadTable(fsys, dir, f.file, f.matrix, f.lay)
		if err != nil {
			return nil, err
		}
		if t != nil {
			ext.SetMatrix(f.matrix, t)
		}
	}
	if exists(fsys, dir, fileUnit) {
		fh, err := fsys.Open(path.Join(dir, fileUnit))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidLayout, err)
		}
		defer fh.Close()
		if err := readUnits(fh, path.Join(dir, fileUnit), ext); err != nil {
			return nil, err
		}
	}

	return ext, nil
}

// loadTable returns (nil, nil) when the file is absent.
func loadTable(fsys fs.FS, dir, file, name string, lay layout) (*Table, error) {
	if !exists(fsys, dir, file) {
		return nil, nil
	}
	p := path.Join(dir, file)
	fh, err := fsys.Open(p)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrInvalidLayout, p, err)
	}
	defer fh.Close()

	return readTable(fh, p, name, lay)
}

// loadSeries returns (nil, nil) when the file is absent.
func loadSeries(fsys fs.FS, dir, file, name string, lay layout) (*Series, error) {
	if !exists(fsys, dir, file) {
		return nil, nil
	}
	p := path.Join(dir, file)
	fh, err := fsys.Open(p)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrInvalidLayout, p, err)
	}
	defer fh.Close()

	return readSeries(fh, p, name, lay)
}

func exists(fsys fs.FS, dir, file string) bool {
	info, err := fs.Stat(fsys, path.Join(dir, file))
	return err == nil && !info.IsDir()
}
