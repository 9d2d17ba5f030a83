package main

import (
	"dependencySheet/contracts"
	"fmt"
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/ast"
	"github.com/expr-lang/expr/parser"
	"regexp"
	"strconv"
	"strings"
)

type ExpressionEvaluator struct {
	compilerOptions []expr.Option
	referenceRegex  *regexp.Regexp
}

func NewExpressionEvaluator() *ExpressionEvaluator {
	return &ExpressionEvaluator{
		compilerOptions: []expr.Option{
			expr.Optimize(false),
			expr.DisableAllBuiltins(),
		},
		referenceRegex: regexp.MustCompile(`\b[A-Z][0-9]+\b`),
	}
}

func (e *ExpressionEvaluator) Evaluate(expression string, vars map[string]int) (int, error) {
	if e.IsNumeric(expression) {
		return strconv.Atoi(strings.TrimSpace(expression))
	}

	tree, err := e.parse(expression)
	if err != nil {
		return 0, err
	}

	env := make(map[string]any, len(vars))
	for _, identifier := range tree.identifiers {
		value, ok := vars[identifier]
		if !ok {
			return 0, fmt.Errorf("%s: %w", identifier, contracts.UndefinedReferenceError)
		}
		env[identifier] = value
	}

	options := append([]expr.Option{expr.Env(env)}, e.compilerOptions...)
	program, err := expr.Compile(expression, options...)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", contracts.ParseError, err)
	}

	output, err := expr.Run(program, env)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", contracts.ParseError, err)
	}

	return e.toInt(output)
}

func (e *ExpressionEvaluator) Validate(expression string) error {
	if e.IsNumeric(expression) {
		return nil
	}

	tree, err := e.parse(expression)
	if err != nil {
		return err
	}

	for _, identifier := range tree.identifiers {
		if !e.isReference(identifier) {
			return fmt.Errorf("%s: %w", identifier, contracts.UndefinedReferenceError)
		}
	}

	return nil
}

func (e *ExpressionEvaluator) ExtractReferences(expression string) []string {
	references := make([]string, 0)
	seen := map[string]bool{}

	for _, reference := range e.referenceRegex.FindAllString(expression, -1) {
		if !seen[reference] {
			seen[reference] = true
			references = append(references, reference)
		}
	}

	return references
}

func (e *ExpressionEvaluator) IsNumeric(expression string) bool {
	_, err := strconv.Atoi(strings.TrimSpace(expression))
	return err == nil
}

func (e *ExpressionEvaluator) isReference(identifier string) bool {
	location := e.referenceRegex.FindStringIndex(identifier)
	return location != nil && location[0] == 0 && location[1] == len(identifier)
}

func (e *ExpressionEvaluator) parse(expression string) (*ExpressionValidatorVisitor, error) {
	if strings.TrimSpace(expression) == "" {
		return nil, fmt.Errorf("%w: empty expression", contracts.ParseError)
	}

	tree, err := parser.Parse(expression)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", contracts.ParseError, err)
	}

	visitor := &ExpressionValidatorVisitor{}
	ast.Walk(&tree.Node, visitor)
	if visitor.err != nil {
		return nil, visitor.err
	}

	return visitor, nil
}

func (e *ExpressionEvaluator) toInt(output any) (int, error) {
	switch value := output.(type) {
	case int:
		return value, nil
	case int64:
		return int(value), nil
	default:
		return 0, fmt.Errorf("%w: result %v is not an integer", contracts.ParseError, output)
	}
}
