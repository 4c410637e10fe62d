package digest

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dmitrijs2005/raptorboost/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sha256("hello")
const helloHex = "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"

// sha256("")
const emptyHex = "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "valid", input: helloHex},
		{name: "uppercase", input: strings.ToUpper(helloHex), wantErr: true},
		{name: "short", input: helloHex[:63], wantErr: true},
		{name: "long", input: helloHex + "0", wantErr: true},
		{name: "non hex", input: strings.Repeat("g", 64), wantErr: true},
		{name: "path traversal", input: "../" + helloHex[3:], wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Parse(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, common.ErrInvalidDigest))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, d.Hex())
			assert.Equal(t, "sha256:"+tt.input, d.String())
		})
	}
}

func TestParseAll_StopsOnInvalid(t *testing.T) {
	_, err := ParseAll([]string{helloHex, "nope"})
	require.ErrorIs(t, err, common.ErrInvalidDigest)

	ds, err := ParseAll([]string{helloHex, emptyHex})
	require.NoError(t, err)
	assert.Equal(t, []Digest{Digest(helloHex), Digest(emptyHex)}, ds)
}

func TestFromBytesAndReader(t *testing.T) {
	assert.Equal(t, Digest(helloHex), FromBytes([]byte("hello")))
	assert.Equal(t, Digest(emptyHex), FromBytes(nil))

	d, n, err := FromReader(bytes.NewReader([]byte("hello")))
	require.NoError(t, err)
	assert.Equal(t, Digest(helloHex), d)
	assert.Equal(t, int64(5), n)
}

func TestFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o600))

	d, n, err := FromFile(path)
	require.NoError(t, err)
	assert.Equal(t, Digest(helloHex), d)
	assert.Equal(t, int64(5), n)

	_, _, err = FromFile(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
}
