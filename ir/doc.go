// Package ir provides the document model of SDL: typed values and tags.
//
// # Values
//
// A Value is an immutable literal of one of the kinds enumerated by Type:
// null, strings (quoted and raw), characters, 32 and 64 bit integers and
// floats, arbitrary precision decimals, booleans, dates, date-times with
// or without a zone, durations and binary data.
//
//	v := ir.FromInt64(10)       // 10L
//	f := ir.FromFloat32(1.5)    // 1.5F
//	d, _ := ir.MakeDuration(5, 11, 18, 24, 123)
//	s := ir.FromDuration(d)     // 5d:11:18:24.123
//
// Value.String returns the literal form, which the parse package reads
// back to an equal value.
//
// # Tags
//
// A Tag has an optional namespace, a name, an optional comment, ordered
// values, attributes keyed by namespace and name, and ordered children.
// Names and namespaces are checked with ValidateIdentifier when they are
// set, so a Tag never holds an illegal identifier.
//
// Children are owned: AddChild refuses a tag which already has a parent
// or which is an ancestor of the receiver, so tags always form a tree.
//
// Tag.Equal compares namespace, name, values, children in order and
// attributes as a set, ignoring comments.
//
// # Building
//
// Builder is a chained constructor performing the same checks as the Tag
// methods at each call:
//
//	t, err := ir.NewBuilder("person").
//		AttributeNS("private", "smoker", ir.FromBool(true)).
//		Child(ir.MustTag("", "address")).
//		Build()
//
// # Paths
//
// Tag.ListPath selects tags with paths such as "$.server.port",
// "$..name" or "$.server[1]", and Tag.Path returns the path of a tag.
//
// # Thread Safety
//
// Values are safe to share. Tags are not synchronized; callers
// mutating a tree from several goroutines must do their own locking.
package ir
