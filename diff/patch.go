package diff

import (
	"bytes"
	"errors"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/SingingBush/SDL/encode"
	"github.com/SingingBush/SDL/format"
	"github.com/SingingBush/SDL/ir"
)

var ErrPatch = errors.New("merge patch error")

// MergePatch returns a JSON merge patch taking the JSON export of from to
// that of to. Children are exported as arrays, which a merge patch
// replaces whole.
func MergePatch(from, to *ir.Tag, opts ...DiffOption) ([]byte, error) {
	cfg := &DiffConfig{}
	for _, o := range opts {
		o(cfg)
	}
	a, err := exportJSON(from, cfg.Comments)
	if err != nil {
		return nil, err
	}
	b, err := exportJSON(to, cfg.Comments)
	if err != nil {
		return nil, err
	}
	p, err := jsonpatch.CreateMergePatch(a, b)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return p, nil
}

// ApplyMergePatch applies patch to the JSON export of t and returns the
// patched JSON.
func ApplyMergePatch(t *ir.Tag, patch []byte) ([]byte, error) {
	d, err := exportJSON(t, true)
	if err != nil {
		return nil, err
	}
	res, err := jsonpatch.MergePatch(d, patch)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return res, nil
}

func exportJSON(t *ir.Tag, comments bool) ([]byte, error) {
	buf := &bytes.Buffer{}
	err := encode.Encode(t, buf,
		encode.EncodeFormat(format.JSONFormat),
		encode.EncodeComments(comments))
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
