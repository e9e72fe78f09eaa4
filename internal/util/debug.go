package util

import (
	"strings"

	"github.com/dave/dst"
)

// DebugPrint returns a human readable representation of the node's
// structure, for debugging output only.
func DebugPrint(node dst.Node) string {
	out := strings.Builder{}
	_ = dst.Fprint(&out, node, dst.NotNilFilter)
	return out.String()
}
