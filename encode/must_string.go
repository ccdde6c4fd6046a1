package encode

import (
	"bytes"
	"strings"

	"github.com/SingingBush/SDL/ir"
)

// MustString returns the SDL text of t without a trailing newline.
func MustString(t *ir.Tag, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(t, buf, opts...); err != nil {
		panic(err)
	}
	return strings.TrimRight(buf.String(), "\n")
}
