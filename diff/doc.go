// Package diff compares SDL tag trees.
//
// Tags compares two trees and returns the edits between them. Children
// are paired by qualified name in order, so the second "port" child of a
// tag is compared with the second "port" child of the other. Unpaired
// children are reported as inserted or deleted whole.
//
// MergePatch gives the same comparison as a JSON merge patch (RFC 7386)
// over the JSON export of package encode.
package diff
