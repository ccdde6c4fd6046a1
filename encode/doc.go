// Package encode writes ir.Tag trees as SDL text, or exports them as
// JSON or YAML.
//
// # Usage
//
//	// Encode to SDL
//	err := encode.Encode(tag, os.Stdout)
//
//	// Encode with indentation, comments and colors
//	err := encode.EncodeAll(tags, os.Stdout,
//	    encode.EncodePretty(true),
//	    encode.EncodeComments(true),
//	    encode.EncodeColors(encode.NewColors()))
//
//	// Export to JSON
//	err := encode.Encode(tag, os.Stdout, encode.EncodeFormat(format.JSONFormat))
//
// A tag is written as its comment lines, its name, its values, its
// attributes and, when it has children, a block holding one child per
// line. A tag named "content" with values is written as its values
// alone. SDL output parses back to tags equal to the ones encoded.
//
// # Related Packages
//
//   - github.com/SingingBush/SDL/ir - the document model
//   - github.com/SingingBush/SDL/parse - parse text to tags
package encode
