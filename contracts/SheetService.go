package contracts

type StoredCell struct {
	Reference  string
	Expression string
}

type SheetStorage interface {
	SaveSheetMeta(sheetId string, rows int, cols int) error
	SaveCell(sheetId string, reference string, expression string) error
	LoadSheet(sheetId string) (rows int, cols int, cells []StoredCell, err error)
	ListSheets() ([]string, error)
	DeleteSheet(sheetId string) error
}

type SheetService interface {
	SetCell(sheetId string, reference string, expression string) (*Cell, error)
	GetCell(sheetId string, reference string) (*Cell, error)
	GetSheet(sheetId string) (*SheetView, error)
	RenderSheet(sheetId string) ([]byte, error)
	Subscribe(sheetId string, reference string, webhookUrl string) error
	DeleteSheet(sheetId string) error
}
