package fileremover

import (
	"errors"
	"io/fs"
	"os"
)

// FileRemover ...
type FileRemover interface {
	Remove(name string) error
}

type fileRemover struct{}

// NewFileRemover ...
func NewFileRemover() FileRemover {
	return fileRemover{}
}

// Remove deletes a single file. A file that is already gone is not an error.
func (r fileRemover) Remove(name string) error {
	if err := os.Remove(name); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
