package main

import (
	"dependencySheet/contracts"
	"fmt"
	"github.com/expr-lang/expr/ast"
)

// ExpressionValidatorVisitor accepts integer literals, identifiers and `+` only
type ExpressionValidatorVisitor struct {
	identifiers []string
	err         error
}

func (v *ExpressionValidatorVisitor) Visit(node *ast.Node) {
	if v.err != nil {
		return
	}

	switch n := (*node).(type) {
	case *ast.IntegerNode:
	case *ast.IdentifierNode:
		v.addIdentifier(n.Value)
	case *ast.BinaryNode:
		if n.Operator != "+" {
			v.err = fmt.Errorf("%w: operator `%s`", contracts.ParseError, n.Operator)
		}
	default:
		v.err = fmt.Errorf("%w: %T", contracts.ParseError, *node)
	}
}

func (v *ExpressionValidatorVisitor) addIdentifier(identifier string) {
	for _, known := range v.identifiers {
		if known == identifier {
			return
		}
	}

	v.identifiers = append(v.identifiers, identifier)
}
