package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Lex    bool
	Parse  bool
	Build  bool
	Encode bool
	Match  bool
	LSP    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Lex = boolEnv("SDL_DEBUG_LEX")
	d.Parse = boolEnv("SDL_DEBUG_PARSE")
	d.Build = boolEnv("SDL_DEBUG_BUILD")
	d.Encode = boolEnv("SDL_DEBUG_ENCODE")
	d.Match = boolEnv("SDL_DEBUG_MATCH")
	d.LSP = boolEnv("SDL_DEBUG_LSP")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Lex() bool {
	return d.Lex
}
func Parse() bool {
	return d.Parse
}
func Build() bool {
	return d.Build
}
func Encode() bool {
	return d.Encode
}
func Match() bool {
	return d.Match
}
func LSP() bool {
	return d.LSP
}

func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
	os.Stderr.Write([]byte{'\n'})
}
