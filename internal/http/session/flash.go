package session

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"
)

// Flash levels for toast notifications.
const (
	FlashSuccess = "success"
	FlashError   = "error"
	FlashWarning = "warning"
	FlashInfo    = "info"
)

const flashKey = "_flash"

// Flash is a one-time notification displayed on the next rendered page.
type Flash struct {
	Level   string `msgpack:"l"`
	Title   string `msgpack:"t"`
	Message string `msgpack:"m"`
}

func (s *Store) AddFlash(w http.ResponseWriter, r *http.Request, flash Flash) error {
	sess, err := s.get(r)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return errors.WithStack(err)
	}

	packed, err := msgpack.Marshal(flash)
	if err != nil {
		return errors.WithStack(err)
	}

	sess.AddFlash(packed, flashKey)

	if err := sess.Save(r, w); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// Flashes consumes the pending flashes of the session.
func (s *Store) Flashes(w http.ResponseWriter, r *http.Request) ([]Flash, error) {
	sess, err := s.get(r)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, errors.WithStack(err)
	}

	raw := sess.Flashes(flashKey)
	if len(raw) == 0 {
		return nil, nil
	}

	flashes := make([]Flash, 0, len(raw))
	for _, value := range raw {
		packed, ok := value.([]byte)
		if !ok {
			continue
		}

		var flash Flash
		if err := msgpack.Unmarshal(packed, &flash); err != nil {
			return nil, errors.WithStack(err)
		}

		flashes = append(flashes, flash)
	}

	if err := sess.Save(r, w); err != nil {
		return nil, errors.WithStack(err)
	}

	return flashes, nil
}
