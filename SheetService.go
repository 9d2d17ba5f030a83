package main

import (
	"bytes"
	"dependencySheet/contracts"
	"errors"
	"fmt"
	"github.com/puzpuzpuz/xsync/v4"
	"sync"
	"time"
)

type sheetEntry struct {
	mu      sync.Mutex
	sheet   contracts.DependencySheet
	deleted bool
}

type SheetFactory func(rows int, cols int) (contracts.DependencySheet, error)

// SheetService owns the in-memory sheets, keeps them in sync with storage and notifies webhooks
type SheetService struct {
	sheets            *xsync.Map[string, *sheetEntry]
	storage           contracts.SheetStorage
	canonicalizer     contracts.Canonicalizer
	webhookDispatcher contracts.WebhookDispatcher
	newSheet          SheetFactory
	metrics           *Metrics
	logger            contracts.Logger
	rows              int
	cols              int
}

func NewSheetService(
	storage contracts.SheetStorage, canonicalizer contracts.Canonicalizer,
	webhookDispatcher contracts.WebhookDispatcher, newSheet SheetFactory,
	metrics *Metrics, logger contracts.Logger, rows int, cols int,
) *SheetService {
	return &SheetService{
		sheets:            xsync.NewMap[string, *sheetEntry](),
		storage:           storage,
		canonicalizer:     canonicalizer,
		webhookDispatcher: webhookDispatcher,
		newSheet:          newSheet,
		metrics:           metrics,
		logger:            logger,
		rows:              rows,
		cols:              cols,
	}
}

func NewDependencySheetFactory(evaluator contracts.ExpressionEvaluator) SheetFactory {
	return func(rows int, cols int) (contracts.DependencySheet, error) {
		return NewDependencySheet(rows, cols, evaluator)
	}
}

func (s *SheetService) SetCell(sheetId string, reference string, expression string) (*contracts.Cell, error) {
	sheetId = s.canonicalizer.CanonicalizeSheetId(sheetId)
	reference = s.canonicalizer.CanonicalizeReference(reference)

	entry, err := s.acquire(sheetId, true)
	if err != nil {
		return nil, err
	}
	defer entry.mu.Unlock()

	started := time.Now()
	before := entry.sheet.Values()
	err = s.assign(sheetId, entry.sheet, reference, expression)
	s.metrics.ObserveCellSet(started, err)

	if err != nil {
		s.logger.Info("cell assignment rejected", "sheet", sheetId, "cell", reference, "expression", expression, "error", err)
		return nil, err
	}

	if err = s.storage.SaveCell(sheetId, reference, expression); err != nil {
		s.logger.Error("cell persist failed", "sheet", sheetId, "cell", reference, "error", err)
		return nil, err
	}

	changed := s.changedCells(entry.sheet, before)
	if len(changed) > 0 {
		s.webhookDispatcher.Notify(sheetId, changed)
		s.metrics.AddWebhooksDispatched(len(changed))
	}

	cell, err := entry.sheet.Cell(reference)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("cell updated", "sheet", sheetId, "cell", reference, "expression", expression, "changed", len(changed))
	return &cell, nil
}

func (s *SheetService) GetCell(sheetId string, reference string) (*contracts.Cell, error) {
	sheetId = s.canonicalizer.CanonicalizeSheetId(sheetId)
	reference = s.canonicalizer.CanonicalizeReference(reference)

	entry, err := s.acquire(sheetId, false)
	if err != nil {
		return nil, err
	}
	defer entry.mu.Unlock()

	cell, err := entry.sheet.Cell(reference)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", contracts.CellNotFoundError, err)
	}

	return &cell, nil
}

func (s *SheetService) GetSheet(sheetId string) (*contracts.SheetView, error) {
	sheetId = s.canonicalizer.CanonicalizeSheetId(sheetId)

	entry, err := s.acquire(sheetId, false)
	if err != nil {
		return nil, err
	}
	defer entry.mu.Unlock()

	return &contracts.SheetView{
		Id:    sheetId,
		Rows:  entry.sheet.Rows(),
		Cols:  entry.sheet.Cols(),
		Cells: entry.sheet.Cells(),
	}, nil
}

func (s *SheetService) RenderSheet(sheetId string) ([]byte, error) {
	sheetId = s.canonicalizer.CanonicalizeSheetId(sheetId)

	entry, err := s.acquire(sheetId, false)
	if err != nil {
		return nil, err
	}
	defer entry.mu.Unlock()

	var out bytes.Buffer
	if err = entry.sheet.Print(&out); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}

func (s *SheetService) Subscribe(sheetId string, reference string, webhookUrl string) error {
	sheetId = s.canonicalizer.CanonicalizeSheetId(sheetId)
	reference = s.canonicalizer.CanonicalizeReference(reference)

	entry, err := s.acquire(sheetId, false)
	if err != nil {
		return err
	}
	defer entry.mu.Unlock()

	if _, err = entry.sheet.Cell(reference); err != nil {
		return fmt.Errorf("%w: %w", contracts.CellNotFoundError, err)
	}

	s.webhookDispatcher.SetWebhookUrl(sheetId, reference, webhookUrl)
	return nil
}

// DeleteSheet drops the sheet from storage and memory, together with its webhook subscriptions
func (s *SheetService) DeleteSheet(sheetId string) error {
	sheetId = s.canonicalizer.CanonicalizeSheetId(sheetId)

	entry, err := s.acquire(sheetId, false)
	if err != nil {
		return err
	}
	defer entry.mu.Unlock()

	if err = s.storage.DeleteSheet(sheetId); err != nil {
		s.logger.Error("sheet delete failed", "sheet", sheetId, "error", err)
		return err
	}

	entry.deleted = true
	s.sheets.Delete(sheetId)

	for _, cell := range entry.sheet.Cells() {
		s.webhookDispatcher.SetWebhookUrl(sheetId, cell.Reference, "")
	}

	s.logger.Info("sheet deleted", "sheet", sheetId)
	return nil
}

// Restore rebuilds every stored sheet. Cells that no longer evaluate are skipped.
func (s *SheetService) Restore() error {
	sheetIds, err := s.storage.ListSheets()
	if err != nil {
		return err
	}

	for _, sheetId := range sheetIds {
		if _, err = s.load(sheetId); err != nil {
			return fmt.Errorf("sheet %s: %w", sheetId, err)
		}
	}

	s.logger.Info("sheets restored", "count", len(sheetIds))
	return nil
}

func (s *SheetService) load(sheetId string) (*sheetEntry, error) {
	if entry, ok := s.sheets.Load(sheetId); ok {
		return entry, nil
	}

	rows, cols, storedCells, err := s.storage.LoadSheet(sheetId)
	if err != nil {
		return nil, err
	}

	sheet, err := s.newSheet(rows, cols)
	if err != nil {
		return nil, err
	}

	for _, stored := range storedCells {
		if err = s.assign(sheetId, sheet, stored.Reference, stored.Expression); err != nil {
			s.logger.Warn("stored cell skipped", "sheet", sheetId, "cell", stored.Reference, "error", err)
		}
	}

	entry, _ := s.sheets.LoadOrStore(sheetId, &sheetEntry{sheet: sheet})
	return entry, nil
}

// acquire returns the locked entry of a live sheet, the caller unlocks it
func (s *SheetService) acquire(sheetId string, create bool) (*sheetEntry, error) {
	for {
		var entry *sheetEntry
		var err error
		if create {
			entry, err = s.loadOrCreate(sheetId)
		} else {
			entry, err = s.load(sheetId)
		}
		if err != nil {
			return nil, err
		}

		entry.mu.Lock()
		if !entry.deleted {
			return entry, nil
		}
		entry.mu.Unlock()
	}
}

func (s *SheetService) loadOrCreate(sheetId string) (*sheetEntry, error) {
	entry, err := s.load(sheetId)
	if err == nil || !errors.Is(err, contracts.SheetNotFoundError) {
		return entry, err
	}

	sheet, err := s.newSheet(s.rows, s.cols)
	if err != nil {
		return nil, err
	}

	if err = s.storage.SaveSheetMeta(sheetId, s.rows, s.cols); err != nil {
		return nil, err
	}

	s.logger.Info("sheet created", "sheet", sheetId, "rows", s.rows, "cols", s.cols)
	entry, _ = s.sheets.LoadOrStore(sheetId, &sheetEntry{sheet: sheet})
	return entry, nil
}

// assign sets the cell and, when the sheet rejects the expression, puts the previous one back,
// so the live sheet always matches what storage holds
func (s *SheetService) assign(sheetId string, sheet contracts.DependencySheet, reference string, expression string) error {
	previous, err := sheet.Cell(reference)
	if err != nil {
		return err
	}

	err = sheet.Set(reference, expression)
	if err == nil {
		return nil
	}

	if current, _ := sheet.Cell(reference); current.Expression != previous.Expression {
		if revertErr := sheet.Set(reference, previous.Expression); revertErr != nil {
			s.logger.Error("cell revert failed", "sheet", sheetId, "cell", reference, "expression", previous.Expression, "error", revertErr)
		}
	}

	return err
}

func (s *SheetService) changedCells(sheet contracts.DependencySheet, before map[string]*int) []contracts.Cell {
	changed := make([]contracts.Cell, 0)
	for _, cell := range sheet.Cells() {
		if !contracts.ValueEquals(before[cell.Reference], cell.Value) {
			changed = append(changed, cell)
		}
	}

	return changed
}
