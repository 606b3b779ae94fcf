package font

import (
	"errors"
	"fmt"
)

var (
	ErrNoCandidates    = errors.New("no font candidates to select from")
	ErrNoContainFace   = errors.New("font contains no valid faces")
	ErrNoFontFileFound = errors.New("no font files found")
	ErrInvalidHandle   = errors.New("invalid font handle")
	ErrNameNotFound    = errors.New("font name not found or empty")
	ErrNilFamily       = errors.New("font family entry is nil")
)

type ErrParseFont struct {
	path string
	idx  int
	err  error
}

func NewErrParseFont(p string, i int, err error) *ErrParseFont {
	return &ErrParseFont{
		path: p,
		idx:  i,
		err:  err,
	}
}

func (e *ErrParseFont) Error() string {
	return fmt.Sprintf("failed to parse font face: \"%s\"[%d]: %s", e.path, e.idx, e.err)
}

func (e *ErrParseFont) Unwrap() error {
	return e.err
}

type ErrOpenResource struct {
	id   int
	name string
	err  error
}

func NewErrOpenResource(id int, name string, err error) *ErrOpenResource {
	return &ErrOpenResource{
		id:   id,
		name: name,
		err:  err,
	}
}

func (e *ErrOpenResource) Error() string {
	return fmt.Sprintf("failed to open font resource #%d \"%s\": %s", e.id, e.name, e.err)
}

func (e *ErrOpenResource) Unwrap() error {
	return e.err
}

type ErrScratchFile struct {
	op  string
	err error
}

func NewErrScratchFile(op string, err error) *ErrScratchFile {
	return &ErrScratchFile{op: op, err: err}
}

func (e *ErrScratchFile) Error() string {
	return fmt.Sprintf("scratch file %s failed: %s", e.op, e.err)
}

func (e *ErrScratchFile) Unwrap() error {
	return e.err
}

type WarningMsg string

func NewWarningMsg(format string, a ...any) *WarningMsg {
	w := WarningMsg(fmt.Sprintf(format, a...))
	return &w
}

func (w WarningMsg) Error() string {
	return string(w)
}

type InfoMsg string

func NewInfoMsg(format string, a ...any) *InfoMsg {
	i := InfoMsg(fmt.Sprintf(format, a...))
	return &i
}

func (i InfoMsg) Error() string {
	return string(i)
}

var _ error = (*ErrParseFont)(nil)
var _ error = (*ErrOpenResource)(nil)
var _ error = (*ErrScratchFile)(nil)
var _ error = (*WarningMsg)(nil)
var _ error = (*InfoMsg)(nil)
