package main

import (
	"dependencySheet/contracts"
	"encoding/binary"
	"errors"
	"fmt"
	"go.etcd.io/bbolt"
)

// SheetStorage persists cell expressions in bbolt: one bucket per sheet, plus a meta bucket with grid sizes
type SheetStorage struct {
	db         *bbolt.DB
	serializer contracts.CellSerializer
}

var metaBucketId = []byte{0x00, 'm', 'e', 't', 'a'}

var sheetBucketPrefix = [2]byte{'s', ':'}

func NewSheetStorage(db *bbolt.DB, serializer contracts.CellSerializer) *SheetStorage {
	return &SheetStorage{
		db:         db,
		serializer: serializer,
	}
}

func (s *SheetStorage) SaveSheetMeta(sheetId string, rows int, cols int) error {
	return s.db.Batch(func(tx *bbolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(metaBucketId)
		if err != nil {
			return err
		}

		return bucket.Put([]byte(sheetId), s.marshalMeta(rows, cols))
	})
}

func (s *SheetStorage) SaveCell(sheetId string, reference string, expression string) error {
	return s.db.Batch(func(tx *bbolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(s.makeBucketId(sheetId))
		if err != nil {
			return err
		}

		return bucket.Put([]byte(reference), s.serializer.Marshal(contracts.StoredCell{
			Reference:  reference,
			Expression: expression,
		}))
	})
}

func (s *SheetStorage) LoadSheet(sheetId string) (rows int, cols int, cells []contracts.StoredCell, err error) {
	cells = make([]contracts.StoredCell, 0)

	err = s.db.View(func(tx *bbolt.Tx) error {
		meta := tx.Bucket(metaBucketId)
		if meta == nil {
			return fmt.Errorf("%s: %w", sheetId, contracts.SheetNotFoundError)
		}

		var metaErr error
		rows, cols, metaErr = s.unmarshalMeta(meta.Get([]byte(sheetId)))
		if metaErr != nil {
			return fmt.Errorf("%s: %w", sheetId, metaErr)
		}

		bucket := tx.Bucket(s.makeBucketId(sheetId))
		if bucket == nil {
			return nil
		}

		return bucket.ForEach(func(_, v []byte) error {
			cell, unmarshalErr := s.serializer.Unmarshal(v)
			if unmarshalErr != nil {
				return fmt.Errorf("%s: %w", sheetId, unmarshalErr)
			}
			cells = append(cells, cell)
			return nil
		})
	})

	return
}

func (s *SheetStorage) ListSheets() ([]string, error) {
	sheetIds := make([]string, 0)

	err := s.db.View(func(tx *bbolt.Tx) error {
		meta := tx.Bucket(metaBucketId)
		if meta == nil {
			return nil
		}

		return meta.ForEach(func(k, _ []byte) error {
			sheetIds = append(sheetIds, string(k))
			return nil
		})
	})

	return sheetIds, err
}

func (s *SheetStorage) DeleteSheet(sheetId string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		err := tx.DeleteBucket(s.makeBucketId(sheetId))
		if err != nil && !errors.Is(err, bbolt.ErrBucketNotFound) {
			return err
		}

		meta := tx.Bucket(metaBucketId)
		if meta == nil {
			return nil
		}

		return meta.Delete([]byte(sheetId))
	})
}

func (s *SheetStorage) makeBucketId(sheetId string) []byte {
	return append(sheetBucketPrefix[:], sheetId...)
}

func (s *SheetStorage) marshalMeta(rows int, cols int) []byte {
	data := make([]byte, 0, 8)
	data = binary.LittleEndian.AppendUint32(data, uint32(rows))
	return binary.LittleEndian.AppendUint32(data, uint32(cols))
}

func (s *SheetStorage) unmarshalMeta(data []byte) (rows int, cols int, err error) {
	if data == nil {
		return 0, 0, contracts.SheetNotFoundError
	}

	if len(data) != 8 {
		return 0, 0, fmt.Errorf("%w: sheet meta should be 8 bytes", SerializerError)
	}

	return int(binary.LittleEndian.Uint32(data)), int(binary.LittleEndian.Uint32(data[4:])), nil
}
