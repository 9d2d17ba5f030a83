package main

import (
	"dependencySheet/contracts"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestCellBinarySerializer_Marshal(t *testing.T) {
	serializer := NewCellBinarySerializer()
	serialized := serializer.Marshal(contracts.StoredCell{Reference: "A1", Expression: "B2+3"})

	assert.Equal(t, []byte{1, 2, 0, 'A', '1', 'B', '2', '+', '3'}, serialized)
}

func TestCellBinarySerializer_Unmarshal(t *testing.T) {
	serializer := NewCellBinarySerializer()

	t.Run("valid_data", func(t *testing.T) {
		for _, expected := range []contracts.StoredCell{
			{Reference: "A1", Expression: "2"},
			{Reference: "C12", Expression: "A1 + B2 + 40"},
			{Reference: "B1", Expression: ""},
		} {
			actual, err := serializer.Unmarshal(serializer.Marshal(expected))

			assert.NoError(t, err)
			assert.Equal(t, expected, actual)
		}
	})

	t.Run("empty_data", func(t *testing.T) {
		cell, err := serializer.Unmarshal([]byte{})

		assert.ErrorIs(t, err, SerializerError)
		assert.Equal(t, contracts.StoredCell{}, cell)
	})

	t.Run("unknown_version", func(t *testing.T) {
		_, err := serializer.Unmarshal([]byte{7, 2, 0, 'A', '1'})
		assert.ErrorIs(t, err, SerializerError)
	})

	t.Run("truncated_reference", func(t *testing.T) {
		cell, err := serializer.Unmarshal([]byte{1, 9, 0, 'A', '1'})

		assert.ErrorIs(t, err, SerializerError)
		assert.Equal(t, contracts.StoredCell{}, cell)
	})
}
