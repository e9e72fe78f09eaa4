// Package declaration reads a parsed struct type into an explicit
// intermediate representation the generator can work from: the record's
// name, its type parameters, and one entry per named field carrying the
// field's type expression, its surviving struct tag markers, its doc
// comment lines, and the accessor requests consumed from its tag.
//
// Reading is destructive toward recognized markers only: the accessor tag
// key is removed from each field's tag literal as part of producing the
// record, because it has no meaning to the Go compiler and must not appear
// in the emitted source. All other tag keys stay attached to the field.
package declaration

import (
	"errors"
	"fmt"
	"slices"
	"strconv"

	"github.com/dave/dst"
)

// ErrUnnamedField is returned when a struct offered for generation contains
// an embedded (unnamed) field. Accessor names are derived from field names,
// so the whole declaration is rejected rather than partially processed.
var ErrUnnamedField = errors.New("struct contains an unnamed field")

// Record is the intermediate representation of one struct declaration.
type Record struct {
	Name       string
	TypeParams *dst.FieldList // shared with the declaration, read only
	Fields     []Field
}

// Field is one named field of a record. Type is shared with the declaration
// and must be cloned before being placed anywhere else in the tree. Markers
// holds only the opaque tag keys that survived consumption.
type Field struct {
	Name    string
	Type    dst.Expr
	Markers []Marker
	Doc     []string

	getter bool
	setter bool
}

// Classified is the per-field tuple the synthesizer consumes.
type Classified struct {
	Name   string
	Type   dst.Expr
	Getter bool
	Setter bool
	Doc    []string
}

// Read builds a Record from a struct type spec, consuming accessor markers
// from the field tags in place. A multi-name field list ("a, b int")
// contributes one Field per name, sharing the type, markers, and docs.
//
// The only domain failure is ErrUnnamedField; the declaration is rejected
// before any field has been mutated, so a failed Read leaves the tree
// untouched.
func Read(spec *dst.TypeSpec) (*Record, error) {
	structType, ok := spec.Type.(*dst.StructType)
	if !ok {
		return nil, fmt.Errorf("declaration %q is not a struct type", spec.Name.Name)
	}

	for i, field := range structType.Fields.List {
		if len(field.Names) == 0 {
			return nil, fmt.Errorf("struct %q, field %d: %w", spec.Name.Name, i, ErrUnnamedField)
		}
	}

	record := &Record{
		Name:       spec.Name.Name,
		TypeParams: spec.TypeParams,
	}

	for _, field := range structType.Fields.List {
		getter, setter, opaque := consumeMarkers(field)
		doc := slices.Clone([]string(field.Decs.Start))

		for _, name := range field.Names {
			record.Fields = append(record.Fields, Field{
				Name:    name.Name,
				Type:    field.Type,
				Markers: opaque,
				Doc:     slices.Clone(doc),
				getter:  getter,
				setter:  setter,
			})
		}
	}

	return record, nil
}

// consumeMarkers partitions a field's tag into accessor requests and opaque
// markers, rewriting the tag literal to carry only the opaque subset. A tag
// that never mentioned the accessor key is left byte for byte as written.
func consumeMarkers(field *dst.Field) (getter, setter bool, opaque []Marker) {
	contents, ok := tagContents(field.Tag)
	if !ok {
		return false, false, nil
	}

	markers := parseMarkers(contents)
	getter, setter, opaque = partitionMarkers(markers)

	if len(opaque) == len(markers) {
		// nothing consumed, keep the original literal untouched
		return getter, setter, opaque
	}
	if len(opaque) == 0 {
		field.Tag = nil
		return getter, setter, nil
	}
	field.Tag.Value = "`" + formatMarkers(opaque) + "`"
	return getter, setter, opaque
}

// Classify reduces the record's fields to the synthesizer's input tuples,
// in declaration order. It is a pure projection of state Read already
// established.
func (r *Record) Classify() []Classified {
	classified := make([]Classified, len(r.Fields))
	for i, field := range r.Fields {
		classified[i] = Classified{
			Name:   field.Name,
			Type:   field.Type,
			Getter: field.getter,
			Setter: field.setter,
			Doc:    field.Doc,
		}
	}
	return classified
}

// WantsAccessors reports whether any field requested generation. The
// emitter uses this to suppress the accessor block entirely when there is
// nothing to emit.
func (r *Record) WantsAccessors() bool {
	for _, field := range r.Fields {
		if field.getter || field.setter {
			return true
		}
	}
	return false
}

// StructHasMarkers reports whether any field of the struct carries the
// accessor tag key. Structs without it never enter the pipeline, so their
// embedded fields and tags are never inspected or rewritten.
func StructHasMarkers(structType *dst.StructType) bool {
	for _, field := range structType.Fields.List {
		if contents, ok := tagContents(field.Tag); ok && HasAccessorTag(contents) {
			return true
		}
	}
	return false
}

// tagContents returns the contents of a field tag literal with the
// surrounding quotes resolved. Tags are usually backquoted but a plain
// string literal is legal too.
func tagContents(tag *dst.BasicLit) (string, bool) {
	if tag == nil {
		return "", false
	}
	contents, err := strconv.Unquote(tag.Value)
	if err != nil {
		return "", false
	}
	return contents, true
}
