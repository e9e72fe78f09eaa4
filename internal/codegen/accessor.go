package codegen

import (
	"go/token"
	"unicode"
	"unicode/utf8"

	"github.com/dave/dst"

	"github.com/structgen/go-struct-accessors/internal/comment"
	"github.com/structgen/go-struct-accessors/internal/declaration"
)

// SetterValueName is the parameter name of every generated setter.
const SetterValueName = "value"

// GetterName derives the getter method name from a field name: the field
// name with its first rune upper-cased. Go does not allow a method to share
// a field's name, so exporting the name is the mechanical derivation.
func GetterName(fieldName string) string {
	r, size := utf8.DecodeRuneInString(fieldName)
	if r == utf8.RuneError {
		return fieldName
	}
	return string(unicode.ToUpper(r)) + fieldName[size:]
}

// SetterName derives the setter method name from a field name.
func SetterName(fieldName string) string {
	return "Set" + GetterName(fieldName)
}

// Synthesize returns the accessor methods for a record's classified fields.
// Methods appear in field declaration order; a field wanting both accessors
// produces its getter immediately followed by its setter. Fields wanting
// neither contribute nothing. The returned slice is nil when no field
// requested generation, so callers can gate emission on it directly.
func Synthesize(recordName string, typeParams *dst.FieldList, fields []declaration.Classified) []*dst.FuncDecl {
	var methods []*dst.FuncDecl
	for _, field := range fields {
		if field.Getter {
			methods = append(methods, GetterMethod(recordName, typeParams, field))
		}
		if field.Setter {
			methods = append(methods, SetterMethod(recordName, typeParams, field))
		}
	}
	return methods
}

// GetterMethod returns a method on *recordName returning a pointer to the
// field, never a copy:
//
//	func (r *Record) Field() *T {
//		return &r.field
//	}
//
// Generic records get a receiver parameterized over the same type
// parameters, in declaration order.
func GetterMethod(recordName string, typeParams *dst.FieldList, field declaration.Classified) *dst.FuncDecl {
	recv, recvName := receiver(recordName, typeParams)

	decl := &dst.FuncDecl{
		Recv: recv,
		Name: dst.NewIdent(GetterName(field.Name)),
		Type: &dst.FuncType{
			Params: &dst.FieldList{},
			Results: &dst.FieldList{
				List: []*dst.Field{
					{
						Type: &dst.StarExpr{
							X: dst.Clone(field.Type).(dst.Expr),
						},
					},
				},
			},
		},
		Body: &dst.BlockStmt{
			List: []dst.Stmt{
				&dst.ReturnStmt{
					Results: []dst.Expr{
						&dst.UnaryExpr{
							Op: token.AND,
							X: &dst.SelectorExpr{
								X:   dst.NewIdent(recvName),
								Sel: dst.NewIdent(field.Name),
							},
						},
					},
				},
			},
		},
	}

	comment.Attach(decl, comment.ForGetter(field.Name, field.Doc))
	return decl
}

// SetterMethod returns a method on *recordName that unconditionally
// overwrites the field with its value parameter:
//
//	func (r *Record) SetField(value T) {
//		r.field = value
//	}
func SetterMethod(recordName string, typeParams *dst.FieldList, field declaration.Classified) *dst.FuncDecl {
	recv, recvName := receiver(recordName, typeParams)

	decl := &dst.FuncDecl{
		Recv: recv,
		Name: dst.NewIdent(SetterName(field.Name)),
		Type: &dst.FuncType{
			Params: &dst.FieldList{
				List: []*dst.Field{
					{
						Names: []*dst.Ident{dst.NewIdent(SetterValueName)},
						Type:  dst.Clone(field.Type).(dst.Expr),
					},
				},
			},
		},
		Body: &dst.BlockStmt{
			List: []dst.Stmt{
				&dst.AssignStmt{
					Tok: token.ASSIGN,
					Lhs: []dst.Expr{
						&dst.SelectorExpr{
							X:   dst.NewIdent(recvName),
							Sel: dst.NewIdent(field.Name),
						},
					},
					Rhs: []dst.Expr{
						dst.NewIdent(SetterValueName),
					},
				},
			},
		},
	}

	comment.Attach(decl, comment.ForSetter(field.Name, field.Doc))
	return decl
}

// receiver builds the method receiver for the record, threading the
// record's type parameters through unchanged so accessors on generic
// records stay generic. Constraints remain on the type declaration; the
// receiver only names the parameters, which is how Go scopes them to
// methods.
func receiver(recordName string, typeParams *dst.FieldList) (*dst.FieldList, string) {
	recvName := receiverName(recordName)

	var recvType dst.Expr = dst.NewIdent(recordName)
	if params := typeParamNames(typeParams); len(params) == 1 {
		recvType = &dst.IndexExpr{
			X:     recvType,
			Index: params[0],
		}
	} else if len(params) > 1 {
		recvType = &dst.IndexListExpr{
			X:       recvType,
			Indices: params,
		}
	}

	recv := &dst.FieldList{
		List: []*dst.Field{
			{
				Names: []*dst.Ident{dst.NewIdent(recvName)},
				Type:  &dst.StarExpr{X: recvType},
			},
		},
	}
	return recv, recvName
}

func receiverName(recordName string) string {
	r, _ := utf8.DecodeRuneInString(recordName)
	if r == utf8.RuneError {
		return "r"
	}
	return string(unicode.ToLower(r))
}

func typeParamNames(typeParams *dst.FieldList) []dst.Expr {
	if typeParams == nil {
		return nil
	}
	var names []dst.Expr
	for _, param := range typeParams.List {
		for _, name := range param.Names {
			names = append(names, dst.NewIdent(name.Name))
		}
	}
	return names
}
