package contracts

type CellSerializer interface {
	Marshal(cell StoredCell) []byte
	Unmarshal(data []byte) (StoredCell, error)
}
