package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/scott-cotton/cli"
)

// input is the contents of a named input. "-" names stdin.
type input struct {
	name string
	data []byte
}

func (in *input) display() string {
	if in.name == "-" {
		return "stdin"
	}
	return in.name
}

// readInputs reads the files in args, or stdin when there are none.
func readInputs(cc *cli.Context, args []string) ([]*input, error) {
	if len(args) == 0 {
		args = []string{"-"}
	}
	res := make([]*input, 0, len(args))
	for _, arg := range args {
		in, err := readInput(cc, arg)
		if err != nil {
			return nil, err
		}
		res = append(res, in)
	}
	return res, nil
}

// readInput reads a file, decompressing .gz and .zst files.
func readInput(cc *cli.Context, name string) (*input, error) {
	var r io.Reader
	if name == "-" {
		r = cc.In
	} else {
		f, err := os.Open(name)
		if err != nil {
			return nil, fmt.Errorf("error opening %s: %w", name, err)
		}
		defer f.Close()
		r = f
	}
	switch filepath.Ext(name) {
	case ".gz":
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("error decompressing %s: %w", name, err)
		}
		defer zr.Close()
		r = zr
	case ".zst":
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("error decompressing %s: %w", name, err)
		}
		defer zr.Close()
		r = zr
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", name, err)
	}
	return &input{name: name, data: d}, nil
}

// writeFile replaces the contents of a file, compressing them as
// readInput expects from its name.
func writeFile(name string, d []byte) error {
	buf := &bytes.Buffer{}
	switch filepath.Ext(name) {
	case ".gz":
		zw := gzip.NewWriter(buf)
		if _, err := zw.Write(d); err != nil {
			return err
		}
		if err := zw.Close(); err != nil {
			return err
		}
	case ".zst":
		zw, err := zstd.NewWriter(buf)
		if err != nil {
			return err
		}
		if _, err := zw.Write(d); err != nil {
			return err
		}
		if err := zw.Close(); err != nil {
			return err
		}
	default:
		buf.Write(d)
	}
	mode := os.FileMode(0644)
	if fi, err := os.Stat(name); err == nil {
		mode = fi.Mode().Perm()
	}
	return os.WriteFile(name, buf.Bytes(), mode)
}
