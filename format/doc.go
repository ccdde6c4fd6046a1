// Package format names the output formats of SDL documents: SDL text
// itself and the JSON and YAML exports of package encode.
package format
