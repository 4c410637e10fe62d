package ledger

import (
	"context"
	"fmt"
	"sync"

	"github.com/fxamacker/cbor/v2"
	"github.com/syndtr/goleveldb/leveldb"
	lerrors "github.com/syndtr/goleveldb/leveldb/errors"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/util"
)

const (
	keyPrefixBinding = "BND" // followed by transfer, NUL, name
	keySeparator     = "\x00"
)

var _ Repository = (*LevelDBRepository)(nil)

var encMode = func() cbor.EncMode {
	em, err := cbor.EncOptions{Time: cbor.TimeRFC3339Nano}.EncMode()
	if err != nil {
		panic(err)
	}
	return em
}()

// LevelDBRepository stores CBOR encoded bindings in an embedded LevelDB.
type LevelDBRepository struct {
	path string
	mu   sync.Mutex
	db   *leveldb.DB
}

// OpenLevelDB opens or creates the ledger at path, recovering the database
// if its manifest is corrupted.
func OpenLevelDB(path string) (*LevelDBRepository, error) {
	opts := &opt.Options{
		Compression: opt.NoCompression,
	}

	db, err := leveldb.OpenFile(path, opts)
	if lerrors.IsCorrupted(err) {
		db, err = leveldb.RecoverFile(path, nil)
	}
	if err != nil {
		return nil, fmt.Errorf("opening ledger %s: %w", path, err)
	}

	return &LevelDBRepository{path: path, db: db}, nil
}

func transferPrefix(transfer string) []byte {
	return []byte(keyPrefixBinding + transfer + keySeparator)
}

func bindingKey(transfer, name string) []byte {
	return append(transferPrefix(transfer), name...)
}

func (r *LevelDBRepository) Record(_ context.Context, b Binding) error {
	raw, err := encMode.Marshal(b)
	if err != nil {
		return fmt.Errorf("encoding binding: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.db.Put(bindingKey(b.Transfer, b.Name), raw, &opt.WriteOptions{Sync: true}); err != nil {
		return fmt.Errorf("storing binding %s/%s: %w", b.Transfer, b.Name, err)
	}
	return nil
}

// List relies on LevelDB key order, so bindings come back sorted by name.
func (r *LevelDBRepository) List(_ context.Context, transfer string) ([]Binding, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	iter := r.db.NewIterator(util.BytesPrefix(transferPrefix(transfer)), nil)
	defer iter.Release()

	var result []Binding
	for iter.Next() {
		var b Binding
		if err := cbor.Unmarshal(iter.Value(), &b); err != nil {
			return nil, fmt.Errorf("decoding binding %q: %w", iter.Key(), err)
		}
		result = append(result, b)
	}
	if err := iter.Error(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *LevelDBRepository) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.db.Close()
}
