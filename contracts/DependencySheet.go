package contracts

import "io"

type DependencySheet interface {
	Set(reference string, expression string) error
	Evaluate(reference string) error
	Cell(reference string) (Cell, error)
	Cells() []Cell
	Values() map[string]*int
	Rows() int
	Cols() int
	Print(w io.Writer) error
}
