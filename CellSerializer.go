package main

import (
	"dependencySheet/contracts"
	"encoding/binary"
	"errors"
	"fmt"
)

var SerializerError = errors.New("invalid serialized data")

const cellFormatVersion = byte(1)

// headerSize version byte + uint16 reference length
const headerSize = 3

// CellBinarySerializer layout: version | len(reference) uint16 LE | reference | expression
type CellBinarySerializer struct {
}

func NewCellBinarySerializer() *CellBinarySerializer {
	return &CellBinarySerializer{}
}

func (s *CellBinarySerializer) Marshal(cell contracts.StoredCell) []byte {
	serializedData := make([]byte, 0, headerSize+len(cell.Reference)+len(cell.Expression))

	serializedData = append(serializedData, cellFormatVersion)
	serializedData = binary.LittleEndian.AppendUint16(serializedData, uint16(len(cell.Reference)))
	serializedData = append(serializedData, cell.Reference...)
	serializedData = append(serializedData, cell.Expression...)
	return serializedData
}

func (s *CellBinarySerializer) Unmarshal(data []byte) (cell contracts.StoredCell, err error) {
	if len(data) < headerSize {
		return cell, fmt.Errorf("%w: should be at least %d bytes (data: %v)", SerializerError, headerSize, data)
	}

	if data[0] != cellFormatVersion {
		return cell, fmt.Errorf("%w: unknown format version %d", SerializerError, data[0])
	}

	referenceLength := int(binary.LittleEndian.Uint16(data[1:]))
	if len(data) < headerSize+referenceLength {
		return cell, fmt.Errorf("%w: reference size is more than bytes amount (referenceSize: %d; data: %v)", SerializerError, referenceLength, data)
	}

	cell.Reference = string(data[headerSize : headerSize+referenceLength])
	cell.Expression = string(data[headerSize+referenceLength:])
	return
}
