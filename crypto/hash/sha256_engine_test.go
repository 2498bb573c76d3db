// Copyright 2026 the sha256-go authors
// This file is part of the sha256-go library in the Nostr Core project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package hash

import (
	"github.com/nostr-core/sha256-go/test"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestSha256Engine_EmptyInput(t *testing.T) {
	engine := NewSha256Engine()
	digest, err := engine.Finalize()
	require.NoError(t, err)
	require.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", digest.String(), "empty input should produce the published vector")
}

func TestSha256Engine_PublishedVectors(t *testing.T) {
	vectors := []struct {
		input    string
		expected string
	}{
		{"abc", "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
		{"abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq", "248d6a61d20638b8e5c026930c3e6039a33ce45964ff2167f6ecedd419db06c1"},
	}

	for _, vector := range vectors {
		engine := NewSha256Engine()
		require.NoError(t, engine.Absorb([]byte(vector.input)))
		digest, err := engine.Finalize()
		require.NoError(t, err)
		require.Equal(t, vector.expected, digest.String(), "input %q should produce the published vector", vector.input)
	}
}

func TestSha256Engine_EverySplitOfTheInputHashesTheSame(t *testing.T) {
	input := make([]byte, 200) // forces splits on both sides of the 64 and 128 byte block boundaries
	for i := range input {
		input[i] = byte(i * 7)
	}
	wholeInput := CalcSha256(input)

	for split := 0; split <= len(input); split++ {
		engine := NewSha256Engine()
		require.NoError(t, engine.Absorb(input[:split]))
		require.NoError(t, engine.Absorb(input[split:]))
		digest, err := engine.Finalize()
		require.NoError(t, err)
		test.RequireCmpEqual(t, wholeInput, digest, "split at %d should not change the digest", split)
	}
}

func TestSha256Engine_PaddingBoundaryLengths(t *testing.T) {
	// zero-filled inputs straddling the 56-byte padding cutoff and the block size
	goldens := map[int]string{
		55: "02779466cdec163811d078815c633f21901413081449002f24aa3e80f0b88ef7",
		56: "d4817aa5497628e7c77e6b606107042bbba3130888c5f47a375e6179be789fbb",
		63: "c7723fa1e0127975e49e62e753db53924c1bd84b8ac1ac08df78d09270f3d971",
		64: "f5a5fd42d16a20302798ef6ed309979b43003d2320d9f0e8ea9831a92759fb4b",
		65: "98ce42deef51d40269d542f5314bef2c7468d401ad5d85168bfab4c0108f75f7",
	}

	for length, expected := range goldens {
		digest := CalcSha256(make([]byte, length))
		require.Equal(t, expected, digest.String(), "digest of %d zero bytes", length)
	}
}

func TestSha256Engine_MillionZeroBytes(t *testing.T) {
	engine := NewSha256Engine()
	chunk := make([]byte, 4096)
	for absorbed := 0; absorbed < 1000000; absorbed += len(chunk) {
		if remaining := 1000000 - absorbed; remaining < len(chunk) {
			chunk = chunk[:remaining]
		}
		require.NoError(t, engine.Absorb(chunk))
	}
	digest, err := engine.Finalize()
	require.NoError(t, err)
	require.Equal(t, "d29751f2649b32ff572b5e0a9f541ea660a50f94ff0beedfb0b692b924cc8025", digest.String(), "golden digest of 1,000,000 zero bytes")
}

func TestSha256Engine_SingleBitFlipChangesTheDigest(t *testing.T) {
	rand := test.NewControlledRand(t)

	for sample := 0; sample < 50; sample++ {
		input := make([]byte, 1+rand.Intn(256))
		rand.Read(input)
		original := CalcSha256(input)

		flippedBit := rand.Intn(len(input) * 8)
		input[flippedBit/8] ^= 1 << uint(flippedBit%8)
		require.False(t, CalcSha256(input).Equal(original), "flipping bit %d of a %d byte input should change the digest", flippedBit, len(input))
	}
}

func TestSha256Engine_AbsorbAfterFinalizeFails(t *testing.T) {
	engine := NewSha256Engine()
	require.NoError(t, engine.Absorb(someData))
	_, err := engine.Finalize()
	require.NoError(t, err)
	require.Error(t, engine.Absorb(someData), "absorb after finalize is misuse")
}

func TestSha256Engine_SecondFinalizeFails(t *testing.T) {
	engine := NewSha256Engine()
	require.NoError(t, engine.Absorb(someData))
	first, err := engine.Finalize()
	require.NoError(t, err)

	second, err := engine.Finalize()
	require.Error(t, err, "finalize is single use")
	require.Equal(t, Digest{}, second, "a failed finalize should not leak state")
	require.Equal(t, ExpectedSha256, first.String(), "the first result stays valid")
}

func TestSha256Engine_MatchesOneShotHelper(t *testing.T) {
	engine := NewSha256Engine()
	require.NoError(t, engine.Absorb(someData))
	digest, err := engine.Finalize()
	require.NoError(t, err)
	test.RequireCmpEqual(t, CalcSha256(someData), digest)
}

func BenchmarkSha256Engine_1KB(b *testing.B) {
	input := make([]byte, 1024)
	b.SetBytes(int64(len(input)))
	for i := 0; i < b.N; i++ {
		engine := NewSha256Engine()
		_ = engine.Absorb(input)
		_, _ = engine.Finalize()
	}
}
