package contracts

type Canonicalizer interface {
	CanonicalizeSheetId(sheetId string) string
	CanonicalizeReference(reference string) string
}
