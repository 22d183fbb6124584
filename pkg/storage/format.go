package storage

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/pierrec/lz4/v4"
	"github.com/vmihailenco/msgpack/v5"
)

const (
	// Magic bytes to identify our file format
	MagicBytes = "GODB"
	// Current version. Version 2 records the uncompressed payload size after the header.
	FormatVersion = 2
	// File extension for snapshot files
	FileExtension = ".godb"
)

// FileHeader represents the header of a snapshot file
type FileHeader struct {
	Magic    [4]byte // "GODB"
	Version  uint8   // Format version
	Flags    uint8   // Reserved for future use
	Reserved [2]byte // Reserved for future use
}

// WriteHeader writes the file header to the given writer
func WriteHeader(w io.Writer) error {
	header := FileHeader{
		Magic:    [4]byte{'G', 'O', 'D', 'B'},
		Version:  FormatVersion,
		Flags:    0,
		Reserved: [2]byte{0, 0},
	}

	return binary.Write(w, binary.LittleEndian, header)
}

// ReadHeader reads and validates the file header
func ReadHeader(r io.Reader) (*FileHeader, error) {
	var header FileHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	if string(header.Magic[:]) != MagicBytes {
		return nil, fmt.Errorf("invalid file format: expected %s, got %s", MagicBytes, string(header.Magic[:]))
	}

	if header.Version != FormatVersion {
		return nil, fmt.Errorf("unsupported file version: %d", header.Version)
	}

	return &header, nil
}

// SnapshotData is the msgpack payload of a snapshot file
type SnapshotData struct {
	Entries  map[string][]byte      `msgpack:"entries"`
	Metadata map[string]interface{} `msgpack:"metadata,omitempty"`
}

// NewSnapshotData creates an empty snapshot payload
func NewSnapshotData() *SnapshotData {
	return &SnapshotData{
		Entries:  make(map[string][]byte),
		Metadata: make(map[string]interface{}),
	}
}

// WriteSnapshot encodes data as header + uncompressed size + lz4 block.
func WriteSnapshot(w io.Writer, data *SnapshotData) error {
	msgpackData, err := msgpack.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to encode MessagePack: %w", err)
	}

	compressed := make([]byte, lz4.CompressBlockBound(len(msgpackData)))
	var hashTable [1 << 16]int
	n, err := lz4.CompressBlock(msgpackData, compressed, hashTable[:])
	if err != nil {
		return fmt.Errorf("failed to compress data: %w", err)
	}
	// Incompressible input: CompressBlock reports 0 and the payload is stored raw.
	flags := uint8(0)
	if n == 0 {
		compressed = msgpackData
		flags = 1
	} else {
		compressed = compressed[:n]
	}

	header := FileHeader{
		Magic:   [4]byte{'G', 'O', 'D', 'B'},
		Version: FormatVersion,
		Flags:   flags,
	}
	if err := binary.Write(w, binary.LittleEndian, header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(len(msgpackData))); err != nil {
		return fmt.Errorf("failed to write payload size: %w", err)
	}
	if _, err := w.Write(compressed); err != nil {
		return fmt.Errorf("failed to write compressed data: %w", err)
	}
	return nil
}

// ReadSnapshot decodes a snapshot written by WriteSnapshot.
func ReadSnapshot(r io.Reader) (*SnapshotData, error) {
	header, err := ReadHeader(r)
	if err != nil {
		return nil, fmt.Errorf("invalid file header: %w", err)
	}

	var size uint32
	if err := binary.Read(r, binary.LittleEndian, &size); err != nil {
		return nil, fmt.Errorf("failed to read payload size: %w", err)
	}

	payload, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read compressed data: %w", err)
	}

	if header.Flags&1 == 0 {
		decompressed := make([]byte, size)
		n, err := lz4.UncompressBlock(payload, decompressed)
		if err != nil {
			return nil, fmt.Errorf("failed to decompress data: %w", err)
		}
		payload = decompressed[:n]
	}

	data := NewSnapshotData()
	if err := msgpack.Unmarshal(payload, data); err != nil {
		return nil, fmt.Errorf("failed to decode MessagePack: %w", err)
	}
	if data.Entries == nil {
		data.Entries = make(map[string][]byte)
	}
	return data, nil
}
