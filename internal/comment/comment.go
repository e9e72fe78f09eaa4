// Package comment assembles the doc comments attached to generated
// accessor methods. Documentation is treated as an ordered list of opaque
// comment lines: the field's own lines are carried into the accessor's doc
// exactly as written, never parsed or reflowed.
package comment

import (
	"fmt"

	"github.com/dave/dst"
)

const (
	getterHeader = "Getter"
	setterHeader = "Setter"
)

// ForGetter returns the doc lines for a generated getter on the named field.
func ForGetter(fieldName string, fieldDoc []string) []string {
	return accessorDoc(getterHeader, fieldName, fieldDoc)
}

// ForSetter returns the doc lines for a generated setter on the named field.
func ForSetter(fieldName string, fieldDoc []string) []string {
	return accessorDoc(setterHeader, fieldName, fieldDoc)
}

// accessorDoc builds the accessor doc block: a header line naming the
// accessor and its field, then the field's original doc lines in order. An
// empty comment line separates the two when original lines follow.
func accessorDoc(kind, fieldName string, fieldDoc []string) []string {
	lines := []string{fmt.Sprintf("// %s for `%s`.", kind, fieldName)}
	if len(fieldDoc) > 0 {
		lines = append(lines, "//")
		lines = append(lines, fieldDoc...)
	}
	return lines
}

// Attach installs doc lines as the node's leading decorations, with an
// empty line before the node so generated declarations stay visually
// separated from their neighbors.
func Attach(node dst.Node, lines []string) {
	decs := node.Decorations()
	decs.Before = dst.EmptyLine
	decs.Start.Clear()
	decs.Start.Append(lines...)
}
