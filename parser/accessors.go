package parser

import (
	"go/token"
	"slices"

	"github.com/dave/dst"

	"github.com/structgen/go-struct-accessors/internal/codegen"
	"github.com/structgen/go-struct-accessors/internal/declaration"
)

// StructAccessors runs the whole transformation for one struct declaration:
// read the fields and consume their accessor markers, classify them, and
// synthesize the accessor methods. The type spec is mutated in place
// (marker stripping only); the returned methods are new declarations ready
// to be spliced after it.
//
// A nil result with a nil error means the struct requested nothing, and the
// caller must emit no accessor declarations for it at all.
func StructAccessors(spec *dst.TypeSpec) ([]*dst.FuncDecl, error) {
	record, err := declaration.Read(spec)
	if err != nil {
		return nil, err
	}
	if !record.WantsAccessors() {
		return nil, nil
	}
	return codegen.Synthesize(record.Name, record.TypeParams, record.Classify()), nil
}

// TransformFile applies accessor generation to every candidate struct in
// the file. A struct is a candidate only if some field tag carries the
// accessor key; everything else is left untouched, byte for byte. Generated
// methods are inserted immediately after the type declaration that owns
// them, in struct order for grouped type declarations.
//
// The returned slice holds every method generated for the file. changed
// also covers marker consumption alone: a struct whose accessor tags
// requested nothing still has those tags stripped, so the file differs from
// the original even though no method exists for it. An error aborts the
// transform with the file partially modified; callers must not emit output
// for a file whose transform failed.
func TransformFile(file *dst.File) (generated []*dst.FuncDecl, changed bool, err error) {
	for i := 0; i < len(file.Decls); i++ {
		genDecl, ok := file.Decls[i].(*dst.GenDecl)
		if !ok || genDecl.Tok != token.TYPE {
			continue
		}

		var methods []*dst.FuncDecl
		for _, s := range genDecl.Specs {
			typeSpec, ok := s.(*dst.TypeSpec)
			if !ok {
				continue
			}
			structType, ok := typeSpec.Type.(*dst.StructType)
			if !ok || !declaration.StructHasMarkers(structType) {
				continue
			}

			accessors, err := StructAccessors(typeSpec)
			if err != nil {
				return generated, changed, err
			}
			changed = true
			methods = append(methods, accessors...)
		}
		if len(methods) == 0 {
			continue
		}

		decls := make([]dst.Decl, len(methods))
		for j, method := range methods {
			decls[j] = method
		}
		file.Decls = slices.Insert(file.Decls, i+1, decls...)
		i += len(decls)
		generated = append(generated, methods...)
	}

	return generated, changed, nil
}
