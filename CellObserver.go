package main

// CellObserver re-evaluates its cell when a referenced cell changes
type CellObserver struct {
	sheet *DependencySheet
	cell  *sheetCell
}

func NewCellObserver(sheet *DependencySheet, cell *sheetCell) *CellObserver {
	return &CellObserver{sheet: sheet, cell: cell}
}

func (o *CellObserver) ObserverId() string {
	return o.cell.reference
}

func (o *CellObserver) Update() error {
	return o.sheet.evaluate(o.cell)
}
