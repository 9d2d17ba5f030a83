package contracts

// Cell is the external view of a single grid slot
type Cell struct {
	Reference  string `json:"reference"`
	Expression string `json:"expression"`
	Value      *int   `json:"value"`
}

type SheetView struct {
	Id    string `json:"id"`
	Rows  int    `json:"rows"`
	Cols  int    `json:"cols"`
	Cells []Cell `json:"cells"`
}

// ValueEquals reports whether two nullable cell values are the same
func ValueEquals(a *int, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}

	return *a == *b
}
