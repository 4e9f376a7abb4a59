package patch

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/bluekeyes/go-gitdiff/gitdiff"
)

var (
	// ErrInvalidPatch indicates text that is not a unified diff.
	ErrInvalidPatch = errors.New("invalid patch")

	// ErrBinaryPatch indicates a patch with binary content.
	ErrBinaryPatch = errors.New("binary patches are not supported")

	// ErrPatchMismatch indicates a patch whose hunks do not apply.
	ErrPatchMismatch = errors.New("patch does not apply")
)

// Reverse undoes a unified diff on newText and returns the original text.
//
// Every file section of the patch is reversed and applied in order to the same
// buffer, so a patch is expected to describe a single file.
func Reverse(newText, unified string) (string, error) {
	files, _, err := gitdiff.Parse(strings.NewReader(unified))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidPatch, err)
	}
	if len(files) == 0 {
		return "", fmt.Errorf("%w: no file sections found", ErrInvalidPatch)
	}

	current := []byte(newText)
	for _, f := range files {
		if f.IsBinary {
			return "", fmt.Errorf("%w: %s", ErrBinaryPatch, fileName(f))
		}

		var out bytes.Buffer
		if err := gitdiff.Apply(&out, bytes.NewReader(current), invert(f)); err != nil {
			return "", fmt.Errorf("%w: %s: %v", ErrPatchMismatch, fileName(f), err)
		}
		current = out.Bytes()
	}

	return string(current), nil
}

// invert returns a copy of f describing the opposite change.
func invert(f *gitdiff.File) *gitdiff.File {
	r := &gitdiff.File{
		OldName:  f.NewName,
		NewName:  f.OldName,
		IsNew:    f.IsDelete,
		IsDelete: f.IsNew,
		OldMode:  f.NewMode,
		NewMode:  f.OldMode,
	}

	for _, frag := range f.TextFragments {
		lines := make([]gitdiff.Line, len(frag.Lines))
		for i, line := range frag.Lines {
			switch line.Op {
			case gitdiff.OpAdd:
				line.Op = gitdiff.OpDelete
			case gitdiff.OpDelete:
				line.Op = gitdiff.OpAdd
			}
			lines[i] = line
		}

		r.TextFragments = append(r.TextFragments, &gitdiff.TextFragment{
			Comment:         frag.Comment,
			OldPosition:     frag.NewPosition,
			OldLines:        frag.NewLines,
			NewPosition:     frag.OldPosition,
			NewLines:        frag.OldLines,
			LinesAdded:      frag.LinesDeleted,
			LinesDeleted:    frag.LinesAdded,
			LeadingContext:  frag.LeadingContext,
			TrailingContext: frag.TrailingContext,
			Lines:           lines,
		})
	}

	return r
}

func fileName(f *gitdiff.File) string {
	if f.NewName != "" {
		return f.NewName
	}
	return f.OldName
}
