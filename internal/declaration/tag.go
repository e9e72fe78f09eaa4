package declaration

import (
	"strconv"
	"strings"
)

// AccessorTagKey is the struct tag key recognized by the generator. Its
// comma-separated options select which accessors a field receives. Every
// other tag key is opaque to the generator and passes through unmodified.
const AccessorTagKey = "accessor"

const (
	getterOption = "get"
	setterOption = "set"
)

// Marker is a single key/value pair from a field's struct tag. The value is
// stored in its quoted form exactly as it appeared in the source, so that
// opaque markers round-trip byte for byte.
type Marker struct {
	Key    string
	Quoted string
}

// Value returns the unquoted tag value, or "" if the quoted form is invalid.
func (m Marker) Value() string {
	v, err := strconv.Unquote(m.Quoted)
	if err != nil {
		return ""
	}
	return v
}

// parseMarkers splits the conventional contents of a struct tag literal
// (without the surrounding backquotes) into an ordered marker list. The
// scan follows the same grammar as reflect.StructTag: space-separated
// key:"value" pairs. Anything unparseable terminates the scan, matching
// reflect's permissive behavior.
func parseMarkers(tag string) []Marker {
	var markers []Marker
	for tag != "" {
		i := 0
		for i < len(tag) && tag[i] == ' ' {
			i++
		}
		tag = tag[i:]
		if tag == "" {
			break
		}

		i = 0
		for i < len(tag) && tag[i] > ' ' && tag[i] != ':' && tag[i] != '"' && tag[i] != 0x7f {
			i++
		}
		if i == 0 || i+1 >= len(tag) || tag[i] != ':' || tag[i+1] != '"' {
			break
		}
		key := tag[:i]
		tag = tag[i+1:]

		i = 1
		for i < len(tag) && tag[i] != '"' {
			if tag[i] == '\\' {
				i++
			}
			i++
		}
		if i >= len(tag) {
			break
		}
		markers = append(markers, Marker{Key: key, Quoted: tag[:i+1]})
		tag = tag[i+1:]
	}
	return markers
}

// formatMarkers reassembles a marker list into struct tag contents, again
// without the surrounding backquotes.
func formatMarkers(markers []Marker) string {
	parts := make([]string, len(markers))
	for i, m := range markers {
		parts[i] = m.Key + ":" + m.Quoted
	}
	return strings.Join(parts, " ")
}

// partitionMarkers splits a marker list into the recognized accessor
// requests and the opaque remainder. Unknown options inside the accessor
// key are ignored rather than rejected.
func partitionMarkers(markers []Marker) (getter, setter bool, opaque []Marker) {
	for _, m := range markers {
		if m.Key != AccessorTagKey {
			opaque = append(opaque, m)
			continue
		}
		for _, opt := range strings.Split(m.Value(), ",") {
			switch strings.TrimSpace(opt) {
			case getterOption:
				getter = true
			case setterOption:
				setter = true
			}
		}
	}
	return getter, setter, opaque
}

// HasAccessorTag reports whether the tag contents mention the accessor key.
// The generator uses this to decide whether a struct participates in
// generation at all.
func HasAccessorTag(tag string) bool {
	for _, m := range parseMarkers(tag) {
		if m.Key == AccessorTagKey {
			return true
		}
	}
	return false
}
