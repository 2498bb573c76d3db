// Copyright 2026 the sha256-go authors
// This file is part of the sha256-go library in the Nostr Core project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package hash

import (
	"encoding/binary"
	"github.com/pkg/errors"
)

// Sha256Engine is an incremental SHA-256 hasher. An engine is single use:
// create, absorb any number of times, finalize once. Absorbing after
// finalize, or finalizing twice, returns a misuse error.
//
// An engine is not safe for concurrent use; every instance is owned by its
// creator and there is nothing to lock on the hot path.
type Sha256Engine struct {
	state     [8]uint32
	block     [SHA256_BLOCK_SIZE_BYTES]byte
	buffered  int    // bytes waiting in block, always < SHA256_BLOCK_SIZE_BYTES
	totalLen  uint64 // every byte absorbed so far, buffered ones included
	finalized bool
}

func NewSha256Engine() *Sha256Engine {
	return &Sha256Engine{state: sha256InitialState}
}

func (e *Sha256Engine) Absorb(data []byte) error {
	if e.finalized {
		return errors.New("absorb called on a finalized sha256 engine")
	}
	e.totalLen += uint64(len(data))
	e.ingest(data)
	return nil
}

func (e *Sha256Engine) Finalize() (Digest, error) {
	if e.finalized {
		return Digest{}, errors.New("finalize called more than once on a sha256 engine")
	}

	bitLen := e.totalLen << 3
	rem := int(e.totalLen % SHA256_BLOCK_SIZE_BYTES)
	zeroFill := SHA256_BLOCK_SIZE_BYTES - 8 - 1 - rem
	if zeroFill < 0 {
		zeroFill += SHA256_BLOCK_SIZE_BYTES
	}

	trailer := make([]byte, 1+zeroFill+8)
	trailer[0] = 0x80
	binary.BigEndian.PutUint64(trailer[len(trailer)-8:], bitLen)
	e.ingest(trailer)
	e.finalized = true

	var digest Digest
	for i, word := range e.state {
		binary.BigEndian.PutUint32(digest[i*4:], word)
	}
	return digest, nil
}

// ingest buffers data and compresses every complete block it accumulates,
// without touching the byte counter (finalize reuses it for the padding).
func (e *Sha256Engine) ingest(data []byte) {
	if e.buffered > 0 {
		n := copy(e.block[e.buffered:], data)
		e.buffered += n
		data = data[n:]
		if e.buffered == SHA256_BLOCK_SIZE_BYTES {
			sha256Compress(&e.state, e.block[:])
			e.buffered = 0
		}
	}
	if n := len(data) &^ (SHA256_BLOCK_SIZE_BYTES - 1); n > 0 {
		sha256Compress(&e.state, data[:n])
		data = data[n:]
	}
	if len(data) > 0 {
		e.buffered = copy(e.block[:], data)
	}
}
