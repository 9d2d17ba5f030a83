package main

import (
	"dependencySheet/contracts"
	"fmt"
	"io"
	"strings"
)

const InitialExpression = "0"

type sheetCell struct {
	row        int
	col        int
	reference  string
	expression string
	value      *int
	// evaluating guards against re-entrant evaluation, i.e. cycles
	evaluating bool
}

// DependencySheet is a fixed grid of cells holding `+` expressions over integer literals and other cells.
// It is not safe for concurrent use.
type DependencySheet struct {
	rows      int
	cols      int
	table     [][]*sheetCell
	graph     contracts.DependencyGraph
	evaluator contracts.ExpressionEvaluator
}

func NewDependencySheet(rows int, cols int, evaluator contracts.ExpressionEvaluator) (*DependencySheet, error) {
	if rows < 1 || cols < 1 || cols > MaxColumns {
		return nil, fmt.Errorf("grid %dx%d: %w", rows, cols, contracts.OutOfRangeError)
	}

	sheet := &DependencySheet{
		rows:      rows,
		cols:      cols,
		table:     make([][]*sheetCell, rows),
		graph:     NewDependencyGraph(),
		evaluator: evaluator,
	}

	for row := 0; row < rows; row++ {
		sheet.table[row] = make([]*sheetCell, cols)
		for col := 0; col < cols; col++ {
			cell := &sheetCell{
				row:        row,
				col:        col,
				reference:  FormatReference(row, col),
				expression: InitialExpression,
			}
			sheet.table[row][col] = cell

			if err := sheet.evaluate(cell); err != nil {
				return nil, err
			}
		}
	}

	return sheet, nil
}

// Set replaces the expression of a cell and propagates the new value to its dependants.
// On CycleError the new expression and its subscriptions stay in place, but every cached value is restored.
func (s *DependencySheet) Set(reference string, expression string) error {
	cell, err := s.cell(reference)
	if err != nil {
		return err
	}

	newSources, err := s.referencedCells(expression)
	if err != nil {
		return fmt.Errorf("cell %s: %w", cell.reference, err)
	}

	if err = s.evaluator.Validate(expression); err != nil {
		return fmt.Errorf("cell %s: %w", cell.reference, err)
	}

	snapshot := s.snapshot()
	observer := NewCellObserver(s, cell)

	// the current expression was accepted before, so its references resolve
	oldSources, _ := s.referencedCells(cell.expression)
	for _, source := range oldSources {
		s.graph.Unsubscribe(source.reference, observer)
	}

	cell.expression = expression

	for _, source := range newSources {
		s.graph.Subscribe(source.reference, observer)
	}

	err = s.evaluate(cell)
	if err == nil {
		err = s.graph.Notify(cell.reference)
	}

	if err != nil {
		s.restore(snapshot)
	}

	return err
}

// Evaluate recomputes a single cell from the cached values of the cells it references
func (s *DependencySheet) Evaluate(reference string) error {
	cell, err := s.cell(reference)
	if err != nil {
		return err
	}

	snapshot := s.snapshot()
	if err = s.evaluate(cell); err != nil {
		s.restore(snapshot)
	}

	return err
}

func (s *DependencySheet) Cell(reference string) (contracts.Cell, error) {
	cell, err := s.cell(reference)
	if err != nil {
		return contracts.Cell{}, err
	}

	return cell.view(), nil
}

func (s *DependencySheet) Cells() []contracts.Cell {
	cells := make([]contracts.Cell, 0, s.rows*s.cols)
	for _, row := range s.table {
		for _, cell := range row {
			cells = append(cells, cell.view())
		}
	}

	return cells
}

func (s *DependencySheet) Values() map[string]*int {
	values := make(map[string]*int, s.rows*s.cols)
	for _, row := range s.table {
		for _, cell := range row {
			values[cell.reference] = copyValue(cell.value)
		}
	}

	return values
}

func (s *DependencySheet) Rows() int {
	return s.rows
}

func (s *DependencySheet) Cols() int {
	return s.cols
}

// Print renders the grid row by row, every value right-aligned in a 4 character field
func (s *DependencySheet) Print(w io.Writer) error {
	var builder strings.Builder

	for _, row := range s.table {
		for _, cell := range row {
			if cell.value != nil {
				_, _ = fmt.Fprintf(&builder, "%4d  ", *cell.value)
			} else {
				_, _ = fmt.Fprintf(&builder, "%4s  ", "")
			}
		}
		builder.WriteByte('\n')
	}

	_, err := io.WriteString(w, builder.String())
	return err
}

func (s *DependencySheet) evaluate(cell *sheetCell) error {
	if cell.evaluating {
		return fmt.Errorf("cell %s: %w", cell.reference, contracts.CycleError)
	}

	if s.evaluator.IsNumeric(cell.expression) {
		value, err := s.evaluator.Evaluate(cell.expression, map[string]int{})
		if err != nil {
			return fmt.Errorf("cell %s: %w", cell.reference, err)
		}
		cell.value = &value
		return nil
	}

	// vars are keyed by the token as written, so `A01` and `A1` both resolve to the first cell
	vars := make(map[string]int)
	for _, token := range s.evaluator.ExtractReferences(cell.expression) {
		referenced, err := s.cell(token)
		if err != nil {
			return fmt.Errorf("cell %s: %w", cell.reference, err)
		}

		// a nil value stays out of vars and surfaces as UndefinedReferenceError
		if referenced.value != nil {
			vars[token] = *referenced.value
		}
	}

	cell.evaluating = true
	defer func() {
		cell.evaluating = false
	}()

	value, err := s.evaluator.Evaluate(cell.expression, vars)
	if err != nil {
		return fmt.Errorf("cell %s: %w", cell.reference, err)
	}
	cell.value = &value

	return s.graph.Notify(cell.reference)
}

func (s *DependencySheet) cell(reference string) (*sheetCell, error) {
	row, col, err := ParseReference(reference)
	if err != nil {
		return nil, err
	}

	if row >= s.rows || col >= s.cols {
		return nil, fmt.Errorf("reference `%s` outside %dx%d grid: %w", reference, s.rows, s.cols, contracts.OutOfRangeError)
	}

	return s.table[row][col], nil
}

// referencedCells resolves every reference token of expression to its cell
func (s *DependencySheet) referencedCells(expression string) ([]*sheetCell, error) {
	tokens := s.evaluator.ExtractReferences(expression)
	cells := make([]*sheetCell, 0, len(tokens))
	for _, token := range tokens {
		cell, err := s.cell(token)
		if err != nil {
			return nil, err
		}
		cells = append(cells, cell)
	}

	return cells, nil
}

func (s *DependencySheet) snapshot() [][]*int {
	values := make([][]*int, s.rows)
	for row := range s.table {
		values[row] = make([]*int, s.cols)
		for col, cell := range s.table[row] {
			values[row][col] = cell.value
		}
	}

	return values
}

func (s *DependencySheet) restore(values [][]*int) {
	for row := range s.table {
		for col, cell := range s.table[row] {
			cell.value = values[row][col]
		}
	}
}

func (c *sheetCell) view() contracts.Cell {
	return contracts.Cell{
		Reference:  c.reference,
		Expression: c.expression,
		Value:      copyValue(c.value),
	}
}

func copyValue(value *int) *int {
	if value == nil {
		return nil
	}

	copied := *value
	return &copied
}
