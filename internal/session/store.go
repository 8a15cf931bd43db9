// Package session persists the authenticated user's session across runs.
// Each field lives in its own file under the store directory, mirroring the
// independent keys the service's web client keeps: writes are atomic per key
// but not across keys, so an interrupted Save can leave a partial session.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ritu748888/boxcourt/internal/models"
)

const (
	userKey   = "user"
	userIDKey = "user_id"
	tokenKey  = "auth_token"
)

// Store is a file-backed session store. The zero value is not usable; use
// NewStore.
type Store struct {
	dir string
}

// NewStore opens (creating if needed) a session store rooted at dir.
func NewStore(dir string) (*Store, error) {
	if dir == "" {
		return nil, fmt.Errorf("session store directory is required")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create session directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Save persists the user record, user id and auth token as three independent
// keys. No validation is applied to the token; an empty token is stored as-is.
func (s *Store) Save(user *models.User, userID int64, authToken string) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	if err := s.writeKey(userKey, data); err != nil {
		return err
	}
	if err := s.writeKey(userIDKey, []byte(strconv.FormatInt(userID, 10))); err != nil {
		return err
	}
	return s.writeKey(tokenKey, []byte(authToken))
}

// Load reads whatever session state is present. Missing keys are not an
// error: a session with a nil user, zero id or empty token is returned as-is
// so callers see exactly what survived (the user-iff-token invariant is not
// enforced here).
func (s *Store) Load() (*models.Session, error) {
	sess := &models.Session{}

	if data, err := s.readKey(userKey); err == nil {
		var user models.User
		if jsonErr := json.Unmarshal(data, &user); jsonErr != nil {
			return nil, fmt.Errorf("decode stored user: %w", jsonErr)
		}
		sess.User = &user
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	if data, err := s.readKey(userIDKey); err == nil {
		id, convErr := strconv.ParseInt(strings.TrimSpace(string(data)), 10, 64)
		if convErr != nil {
			return nil, fmt.Errorf("decode stored user id: %w", convErr)
		}
		sess.UserID = id
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	if data, err := s.readKey(tokenKey); err == nil {
		sess.AuthToken = string(data)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	return sess, nil
}

// Clear removes all three keys. Clearing an already-empty store is a no-op.
func (s *Store) Clear() error {
	for _, key := range []string{userKey, userIDKey, tokenKey} {
		if err := os.Remove(filepath.Join(s.dir, key)); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("remove %s: %w", key, err)
		}
	}
	return nil
}

// writeKey writes a single key atomically via a temp file rename.
func (s *Store) writeKey(key string, data []byte) error {
	tmp, err := os.CreateTemp(s.dir, key+".tmp-*")
	if err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", key, err)
	}
	if err := os.Rename(tmpName, filepath.Join(s.dir, key)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

func (s *Store) readKey(key string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, key))
	if err != nil {
		return nil, err
	}
	return data, nil
}
