package contracts

type ExpressionEvaluator interface {
	// Evaluate vars is required for every call and is never retained
	Evaluate(expression string, vars map[string]int) (int, error)
	Validate(expression string) error
	ExtractReferences(expression string) []string
	IsNumeric(expression string) bool
}
