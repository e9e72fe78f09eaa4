package comment

import (
	"testing"

	"github.com/dave/dst"
	"github.com/stretchr/testify/assert"
)

func Test_ForGetter(t *testing.T) {
	tests := []struct {
		name     string
		fieldDoc []string
		want     []string
	}{
		{
			name: "no field doc",
			want: []string{"// Getter for `b`."},
		},
		{
			name:     "single doc line",
			fieldDoc: []string{"// Baz."},
			want:     []string{"// Getter for `b`.", "//", "// Baz."},
		},
		{
			name:     "multiple doc lines keep order",
			fieldDoc: []string{"// Baz.", "// More."},
			want:     []string{"// Getter for `b`.", "//", "// Baz.", "// More."},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ForGetter("b", tt.fieldDoc))
		})
	}
}

func Test_ForSetter(t *testing.T) {
	assert.Equal(t, []string{"// Setter for `a`.", "//", "// Count."}, ForSetter("a", []string{"// Count."}))
	assert.Equal(t, []string{"// Setter for `a`."}, ForSetter("a", nil))
}

func Test_Attach(t *testing.T) {
	decl := &dst.FuncDecl{Name: dst.NewIdent("B")}
	Attach(decl, []string{"// Getter for `b`."})

	assert.Equal(t, dst.EmptyLine, decl.Decs.Before)
	assert.Equal(t, dst.Decorations{"// Getter for `b`."}, decl.Decs.Start)
}
