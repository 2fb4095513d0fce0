package bin

import (
	"bytes"
	"encoding/binary"
	"io"
)

// Uint16 converts the big-endian byte array to the uint16
func Uint16(bs []byte) uint16 {
	return binary.BigEndian.Uint16(bs)
}

// Uint32 converts the big-endian byte array to the uint32
func Uint32(bs []byte) uint32 {
	return binary.BigEndian.Uint32(bs)
}

// Uint64 converts the big-endian byte array to the uint64
func Uint64(bs []byte) uint64 {
	return binary.BigEndian.Uint64(bs)
}

// Uint16Bytes returns the big-endian byte array of the uint16
func Uint16Bytes(v uint16) []byte {
	bs := make([]byte, 2)
	binary.BigEndian.PutUint16(bs, v)
	return bs
}

// Uint32Bytes returns the big-endian byte array of the uint32
func Uint32Bytes(v uint32) []byte {
	bs := make([]byte, 4)
	binary.BigEndian.PutUint32(bs, v)
	return bs
}

// Uint64Bytes returns the big-endian byte array of the uint64
func Uint64Bytes(v uint64) []byte {
	bs := make([]byte, 8)
	binary.BigEndian.PutUint64(bs, v)
	return bs
}

// WriterToBytes serializes the io.WriterTo to the byte array
func WriterToBytes(w io.WriterTo) ([]byte, int64, error) {
	var buffer bytes.Buffer
	if sum, err := w.WriteTo(&buffer); err != nil {
		return nil, sum, err
	} else {
		return buffer.Bytes(), sum, nil
	}
}

// ReaderFromBytes deserializes the io.ReaderFrom from the byte array
func ReaderFromBytes(r io.ReaderFrom, bs []byte) (int64, error) {
	return r.ReadFrom(bytes.NewReader(bs))
}
