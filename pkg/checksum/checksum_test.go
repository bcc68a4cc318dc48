package checksum

import (
	"crypto/md5" //nolint:gosec // test fixture
	"crypto/sha256"
	"encoding/hex"
	"testing"

	pkgerrors "github.com/glorpus-work/o3data/pkg/errors"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeebo/blake3"
)

var content = []byte("ply\nformat ascii 1.0\n")

func md5Hex(b []byte) string {
	s := md5.Sum(b) //nolint:gosec // test fixture
	return hex.EncodeToString(s[:])
}

func sha256Hex(b []byte) string {
	s := sha256.Sum256(b)
	return hex.EncodeToString(s[:])
}

func blake3Hex(b []byte) string {
	s := blake3.Sum256(b)
	return hex.EncodeToString(s[:])
}

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Sum
		wantErr  bool
	}{
		{
			name:     "bare md5",
			input:    "568f871d1a221ba6627569f1e6f9a3f2",
			expected: Sum{Algorithm: MD5, Hex: "568f871d1a221ba6627569f1e6f9a3f2"},
		},
		{
			name:     "bare sha256 upper case",
			input:    "B1ACC63BECE78444AA2E15BDCC72371A201279B98C6F5D4B74C993D02F0566FE",
			expected: Sum{Algorithm: SHA256, Hex: "b1acc63bece78444aa2e15bdcc72371a201279b98c6f5d4b74c993d02f0566fe"},
		},
		{
			name:     "prefixed blake3",
			input:    "blake3:" + blake3Hex(content),
			expected: Sum{Algorithm: BLAKE3, Hex: blake3Hex(content)},
		},
		{name: "empty", input: "  ", wantErr: true},
		{name: "odd length", input: "abc", wantErr: true},
		{name: "not hex", input: "zz8f871d1a221ba6627569f1e6f9a3f2", wantErr: true},
		{name: "unknown algorithm", input: "crc32:deadbeef", wantErr: true},
		{name: "prefixed wrong length", input: "md5:" + sha256Hex(content), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sum, err := Parse(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, pkgerrors.ErrInvalidChecksum)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, sum)
		})
	}
}

func TestVerify(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/dl/BunnyMesh.ply", content, 0o644))

	tests := []struct {
		name     string
		expected string
		match    bool
	}{
		{name: "md5 match", expected: md5Hex(content), match: true},
		{name: "sha256 match", expected: sha256Hex(content), match: true},
		{name: "blake3 match", expected: "blake3:" + blake3Hex(content), match: true},
		{name: "md5 mismatch", expected: md5Hex([]byte("other")), match: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := Verify(fs, "/dl/BunnyMesh.ply", tt.expected)
			require.NoError(t, err)
			assert.Equal(t, tt.match, ok)
		})
	}

	_, err := Verify(fs, "/dl/missing.ply", md5Hex(content))
	assert.Error(t, err)
}

func TestSumMatchesStreamingHash(t *testing.T) {
	sum, err := Parse(md5Hex(content))
	require.NoError(t, err)

	h := sum.NewHash()
	_, _ = h.Write(content[:4])
	_, _ = h.Write(content[4:])
	assert.True(t, sum.Matches(h))
	assert.Equal(t, "md5:"+md5Hex(content), sum.String())
}
