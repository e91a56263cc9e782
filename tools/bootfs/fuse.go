//go:build linux || darwin

package bootfs

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path"
	"syscall"

	"github.com/diskfs/go-diskfs/filesystem"
	"rsc.io/rsc/fuse"
)

// FS implements the file system. All nodes are read-only, the image
// is modified with the sd tool instead.
type FS struct {
	fat filesystem.FileSystem
}

func (p *FS) Root() (fuse.Node, fuse.Error) {
	return &fusedir{p.fat, "/"}, nil
}

// fusedir implements Node and Handle for a directory.
type fusedir struct {
	fat  filesystem.FileSystem
	path string
}

func (d *fusedir) Attr() fuse.Attr {
	return fuse.Attr{
		Mode: os.ModeDir | 0o555,
	}
}

func (d *fusedir) Lookup(name string, intr fuse.Intr) (fuse.Node, fuse.Error) {
	entries, err := d.fat.ReadDir(d.path)
	if err != nil {
		return nil, errno(err)
	}
	for _, e := range entries {
		if e.Name() != name {
			continue
		}
		if e.IsDir() {
			return &fusedir{d.fat, path.Join(d.path, name)}, nil
		}
		return &fusefile{d.fat, path.Join(d.path, name), e}, nil
	}
	return nil, fuse.ENOENT
}

func (d *fusedir) ReadDir(intr fuse.Intr) ([]fuse.Dirent, fuse.Error) {
	entries, err := d.fat.ReadDir(d.path)
	if err != nil {
		return nil, errno(err)
	}
	fuseEntries := make([]fuse.Dirent, len(entries))
	for i, e := range entries {
		fuseEntries[i] = fuse.Dirent{
			Name: e.Name(),
		}
	}
	return fuseEntries, nil
}

// fusefile implements both Node and Handle.
type fusefile struct {
	fat  filesystem.FileSystem
	path string
	info os.FileInfo
}

func (f *fusefile) Attr() fuse.Attr {
	return fuse.Attr{
		Mode:  0o444,
		Mtime: f.info.ModTime(),
		Size:  uint64(f.info.Size()),
	}
}

func (f *fusefile) ReadAll(intr fuse.Intr) ([]byte, fuse.Error) {
	r, err := f.fat.OpenFile(f.path, os.O_RDONLY)
	if err != nil {
		return nil, errno(err)
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, errno(err)
	}
	return b, nil
}

func errno(err error) fuse.Error {
	if errors.Is(err, fs.ErrInvalid) {
		return fuse.Errno(syscall.EINVAL)
	} else if errors.Is(err, fs.ErrExist) {
		return fuse.Errno(syscall.EEXIST)
	} else if errors.Is(err, fs.ErrNotExist) {
		return fuse.Errno(syscall.ENOENT)
	} else {
		return fuse.EIO
	}
}
