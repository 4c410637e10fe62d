// Package digest handles the SHA-256 identities of content-store objects.
//
// A Digest is always the lowercase hex encoding of the SHA-256 of the exact
// object bytes. Parse is the only way to obtain one from untrusted input;
// a parsed digest is guaranteed to be a safe single path component.
package digest

import (
	_ "crypto/sha256" // registers crypto.SHA256 for go-digest validation
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"os"

	"github.com/dmitrijs2005/raptorboost/internal/common"
	sha256 "github.com/minio/sha256-simd"
	godigest "github.com/opencontainers/go-digest"
)

// Digest is a validated lowercase hex SHA-256.
type Digest string

// Parse validates s as a lowercase 64 character hex SHA-256.
func Parse(s string) (Digest, error) {
	if err := godigest.NewDigestFromEncoded(godigest.SHA256, s).Validate(); err != nil {
		return "", fmt.Errorf("%w: %q: %v", common.ErrInvalidDigest, s, err)
	}
	return Digest(s), nil
}

// MustParse is Parse for constants in tests and tooling.
func MustParse(s string) Digest {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

// ParseAll parses every string, failing on the first invalid one.
func ParseAll(ss []string) ([]Digest, error) {
	out := make([]Digest, 0, len(ss))
	for _, s := range ss {
		d, err := Parse(s)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

// Hex returns the hex encoding.
func (d Digest) Hex() string {
	return string(d)
}

func (d Digest) String() string {
	return "sha256:" + string(d)
}

// NewHasher returns a streaming SHA-256 hasher.
func NewHasher() hash.Hash {
	return sha256.New()
}

// FromHash converts the sum of a hasher returned by NewHasher.
func FromHash(h hash.Hash) Digest {
	return Digest(hex.EncodeToString(h.Sum(nil)))
}

// FromBytes digests an in-memory payload.
func FromBytes(b []byte) Digest {
	sum := sha256.Sum256(b)
	return Digest(hex.EncodeToString(sum[:]))
}

// FromReader digests everything r yields and reports the byte count.
func FromReader(r io.Reader) (Digest, int64, error) {
	h := NewHasher()
	n, err := io.Copy(h, r)
	if err != nil {
		return "", n, err
	}
	return FromHash(h), n, nil
}

// FromFile digests the file at path.
func FromFile(path string) (Digest, int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", 0, err
	}
	defer f.Close()
	return FromReader(f)
}
