package contracts

import (
	"errors"
	"fmt"
)

var ExpressionError = errors.New("expression error")

// ParseError expression uses something beyond integer literals, cell references and `+`
var ParseError = fmt.Errorf("%w: %s", ExpressionError, "unsupported expression")

var UndefinedReferenceError = fmt.Errorf("%w: %s", ExpressionError, "undefined reference")

var CycleError = fmt.Errorf("%w: %s", ExpressionError, "circular reference detected")

var OutOfRangeError = errors.New("reference out of range")

var SheetNotFoundError = errors.New("sheet not found")

var CellNotFoundError = errors.New("cell not found")

var SequenceNotFoundError = errors.New("sequence not found")

var UnknownStrategyError = errors.New("unknown strategy")

var EmptyInputError = errors.New("empty input")

var TooManyNumbersError = errors.New("too many numbers requested")
