package crypto

import (
	"crypto/rand"

	"github.com/pkg/errors"
)

// RandomBytes returns n bytes read from the system random source.
func RandomBytes(n int) ([]byte, error) {
	b := make([]byte, n)

	read, err := rand.Read(b)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if read != n {
		return nil, errors.Errorf("could not read %d bytes", n)
	}

	return b, nil
}
