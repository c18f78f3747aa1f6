package assetfile

import (
	"errors"
	"fmt"
	"io"
	"os"
)

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/

// ErrNotRegular is returned for paths which do not name a regular file.
var ErrNotRegular = errors.New("assetfile: not a regular file")

// maxAssetSize guards against reading huge files into memory by accident.
const maxAssetSize = 1 << 30

// File is an asset loaded into memory.
type File struct {
	Path    string
	Info    os.FileInfo
	Content []byte
}

// Load reads a regular file completely.
func Load(name string) (*File, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrNotRegular, name)
	} else if fi.Size() > maxAssetSize {
		return nil, fmt.Errorf("assetfile: %s has %d bytes, limit is %d", name, fi.Size(), maxAssetSize)
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, err
	}
	defer file.Close()
	content := make([]byte, fi.Size())
	cnt, err := io.ReadFull(file, content)
	if err != nil {
		return nil, fmt.Errorf("assetfile: loading %s: %w", name, err)
	}
	tracer().Debugf("loaded %d bytes from %s", cnt, name)
	return &File{Path: name, Info: fi, Content: content}, nil
}
