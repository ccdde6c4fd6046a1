package token

import (
	"fmt"
	"sort"
	"strconv"
)

// PosDoc maps byte offsets of a document to 0-based lines and columns.
type PosDoc struct {
	d []byte
	n []int
}

func NewPosDoc(d []byte) *PosDoc {
	p := &PosDoc{d: d}
	for i, c := range d {
		if c == '\n' {
			p.n = append(p.n, i)
		}
	}
	return p
}

func (p *PosDoc) LineCol(off int) (int, int) {
	N := len(p.n)
	di := sort.Search(N, func(i int) bool {
		return p.n[i] >= off
	})
	switch di {
	case 0:
		return 0, off
	case N:
		if N != 0 {
			return di, off - p.n[di-1] - 1
		}
		return 0, off
	default:
		return di, off - p.n[di-1] - 1
	}
}

// Offset is the inverse of LineCol. Columns past the end of a line are
// clamped to the line end.
func (p *PosDoc) Offset(line, col int) int {
	start := 0
	if line > 0 {
		if line > len(p.n) {
			return len(p.d)
		}
		start = p.n[line-1] + 1
	}
	end := len(p.d)
	if line < len(p.n) {
		end = p.n[line]
	}
	return min(start+col, end)
}

// Line returns the text of the 0-based line, without its newline.
func (p *PosDoc) Line(line int) []byte {
	start := p.Offset(line, 0)
	end := len(p.d)
	if line < len(p.n) {
		end = p.n[line]
	}
	return p.d[start:end]
}

func (p *PosDoc) Bytes() []byte {
	return p.d
}

func (d *PosDoc) Pos(i int) *Pos {
	return &Pos{
		I: i,
		D: d,
	}
}

func (p *PosDoc) end() *Pos {
	return &Pos{
		I: len(p.d),
		D: p,
	}
}

type Pos struct {
	I int
	D *PosDoc
}

func (p *Pos) LineCol() (int, int) {
	return p.D.LineCol(p.I)
}

func (p *Pos) Line() int {
	l, _ := p.LineCol()
	return l
}

func (p *Pos) Col() int {
	_, c := p.LineCol()
	return c
}

func (p Pos) String() string {
	sample := string(p.D.d[max(0, p.I-5):min(p.I+5, len(p.D.d))])
	sample = strconv.Quote(sample)
	sample = sample[1 : len(sample)-1]
	return fmt.Sprintf("`...%s...` at offset %d (line=%d, col=%d)", sample, p.I, p.Line(), p.Col())
}
