// Package sdl reads and writes SDL (Simple Declarative Language)
// documents.
//
// An SDL document is a list of tags. A tag has an optional namespace, a
// name, values, attributes and a block of child tags:
//
//	// a comment
//	person "Akiko" "Johnson" dimensions:height=68 {
//	    son "Nouhiro" "Johnson"
//	    daughter "Sabrina" "Johnson" location="Italy" {
//	        hobbies "swimming" "surfing"
//	        birthday 1998/10/25
//	    }
//	}
//
// Parse and Root read documents into ir.Tag trees, Format writes them
// back, and Tag builds trees in code:
//
//	t, err := sdl.Tag("server").
//	    Value(ir.FromString("web")).
//	    Attribute("port", ir.FromInt32(8080)).
//	    Build()
//	fmt.Println(sdl.Format(t, true)) // server "web" port=8080
//
// Match and Trim select tags by example.
//
// # Related Packages
//
//   - github.com/SingingBush/SDL/ir - values and tags
//   - github.com/SingingBush/SDL/parse - the parser
//   - github.com/SingingBush/SDL/encode - the formatter
package sdl
