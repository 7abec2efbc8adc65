package junitxml

import (
	"bytes"
	"fmt"

	"github.com/bitrise-io/go-utils/fileutil"
	"github.com/bitrise-io/go-utils/v2/pathutil"
)

// Reader ...
type Reader interface {
	Read(pth string) (*TestReport, error)
}

type reader struct {
	pathChecker pathutil.PathChecker
}

// NewReader ...
func NewReader(pathChecker pathutil.PathChecker) Reader {
	return &reader{pathChecker: pathChecker}
}

// Read loads the report at pth. Missing, unreadable and malformed files are all errors.
func (r reader) Read(pth string) (*TestReport, error) {
	if exist, err := r.pathChecker.IsPathExists(pth); err != nil {
		return nil, fmt.Errorf("failed to check report file (%s): %w", pth, err)
	} else if !exist {
		return nil, fmt.Errorf("report file does not exist: %s", pth)
	}

	content, err := fileutil.ReadBytesFromFile(pth)
	if err != nil {
		return nil, fmt.Errorf("failed to read report file (%s): %w", pth, err)
	}

	report, err := Parse(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse report file (%s): %w", pth, err)
	}

	return report, nil
}
