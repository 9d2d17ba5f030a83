package main

import (
	"dependencySheet/contracts"
	"github.com/stretchr/testify/assert"
	"go.etcd.io/bbolt"
	"os"
	"testing"
)

func TestSheetStorage_LoadSheet(t *testing.T) {
	db, closeDb := _createTmpDb()
	defer closeDb()
	storage := NewSheetStorage(db, NewCellBinarySerializer())

	t.Run("not_found", func(t *testing.T) {
		_, _, cells, err := storage.LoadSheet("unknown")

		assert.ErrorIs(t, err, contracts.SheetNotFoundError)
		assert.Empty(t, cells)
	})

	t.Run("meta_only", func(t *testing.T) {
		assert.NoError(t, storage.SaveSheetMeta("empty", 3, 4))

		rows, cols, cells, err := storage.LoadSheet("empty")
		assert.NoError(t, err)
		assert.Equal(t, 3, rows)
		assert.Equal(t, 4, cols)
		assert.Empty(t, cells)
	})

	t.Run("cells", func(t *testing.T) {
		assert.NoError(t, storage.SaveSheetMeta("sheet1", 5, 5))
		assert.NoError(t, storage.SaveCell("sheet1", "A1", "2"))
		assert.NoError(t, storage.SaveCell("sheet1", "A3", "A1+A2"))
		assert.NoError(t, storage.SaveCell("sheet1", "A1", "4"))
		assert.NoError(t, storage.SaveCell("other", "A1", "100"))

		rows, cols, cells, err := storage.LoadSheet("sheet1")
		assert.NoError(t, err)
		assert.Equal(t, 5, rows)
		assert.Equal(t, 5, cols)
		assert.Equal(t, []contracts.StoredCell{
			{Reference: "A1", Expression: "4"},
			{Reference: "A3", Expression: "A1+A2"},
		}, cells)
	})

	t.Run("corrupted_cell", func(t *testing.T) {
		assert.NoError(t, storage.SaveSheetMeta("broken", 2, 2))
		assert.NoError(t, db.Update(func(tx *bbolt.Tx) error {
			bucket, err := tx.CreateBucketIfNotExists(storage.makeBucketId("broken"))
			if err != nil {
				return err
			}
			return bucket.Put([]byte("A1"), []byte{9})
		}))

		_, _, _, err := storage.LoadSheet("broken")
		assert.ErrorIs(t, err, SerializerError)
	})
}

func TestSheetStorage_ListAndDelete(t *testing.T) {
	db, closeDb := _createTmpDb()
	defer closeDb()
	storage := NewSheetStorage(db, NewCellBinarySerializer())

	sheetIds, err := storage.ListSheets()
	assert.NoError(t, err)
	assert.Empty(t, sheetIds)

	assert.NoError(t, storage.SaveSheetMeta("b", 1, 1))
	assert.NoError(t, storage.SaveSheetMeta("a", 2, 2))
	assert.NoError(t, storage.SaveCell("a", "B2", "7"))

	sheetIds, err = storage.ListSheets()
	assert.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, sheetIds)

	assert.NoError(t, storage.DeleteSheet("a"))
	assert.NoError(t, storage.DeleteSheet("never_existed"))

	sheetIds, err = storage.ListSheets()
	assert.NoError(t, err)
	assert.Equal(t, []string{"b"}, sheetIds)

	_, _, _, err = storage.LoadSheet("a")
	assert.ErrorIs(t, err, contracts.SheetNotFoundError)
}

func _createTmpDb() (*bbolt.DB, func()) {
	f, _ := os.CreateTemp("", "db_*.db")
	os.Remove(f.Name())

	db, dbErr := bbolt.Open(f.Name(), 0600, nil)
	if dbErr != nil {
		panic(dbErr)
	}

	return db, func() {
		db.Close()
		os.Remove(f.Name())
	}
}
