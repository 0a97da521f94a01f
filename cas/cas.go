package cas

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// CAS stores serialized items under the hash of their bytes. Storing the
// same content twice yields the same hash.
type CAS interface {
	Put(item Hashable) (Hash, error)
	Has(hash Hash) bool
	Len() int
	getValue(h Hash) (bool, []byte, error)
}

type Serde interface {
	Serialize(w io.Writer) error
	Deserialize(r io.Reader) error
}

type Hashable interface {
	Serde
}

type Hash uint64

func (h Hash) String() string {
	return fmt.Sprintf("0x%016x", uint64(h))
}

// ParseHash accepts the String form, with or without the 0x prefix.
func ParseHash(s string) (Hash, error) {
	s = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "0x")
	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid hash %q: %w", s, err)
	}
	return Hash(v), nil
}

// Retrieve decodes the item stored under hash into a fresh T.
func Retrieve[T any, PT interface {
	*T
	Serde
}](c CAS, hash Hash) (PT, error) {
	has, data, err := c.getValue(hash)
	if err != nil {
		return nil, err
	}
	if !has {
		return nil, fmt.Errorf("hash not found in CAS: %s", hash)
	}
	out := PT(new(T))
	if err := out.Deserialize(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("deserializing %s: %w", hash, err)
	}
	return out, nil
}
