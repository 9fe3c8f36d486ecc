package models

import (
	"orca-service/internal/pkg/constvars"
	"orca-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

// Session is the decoded payload of one signed cookie. Values are kept as raw
// JSON so each caller decodes into its own type.
type Session struct {
	values map[string]json.RawMessage
}

func NewSession(values map[string]json.RawMessage) *Session {
	if values == nil {
		values = make(map[string]json.RawMessage)
	}
	return &Session{values: values}
}

func (s *Session) Values() map[string]json.RawMessage {
	return s.values
}

func (s *Session) IsEmpty() bool {
	return len(s.values) == 0
}

func (s *Session) Has(key string) bool {
	_, ok := s.values[key]
	return ok
}

// Get decodes the value stored under key into dst and reports whether the
// key was present.
func (s *Session) Get(key string, dst interface{}) (bool, error) {
	raw, ok := s.values[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return true, exceptions.ErrSessionEncode(err, key)
	}
	return true, nil
}

func (s *Session) Set(key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return exceptions.ErrSessionEncode(err, key)
	}
	s.values[key] = raw
	return nil
}

func (s *Session) Unset(key string) {
	delete(s.values, key)
}

// Flash stores a value that is removed the first time it is read.
func (s *Session) Flash(key string, value interface{}) error {
	return s.Set(constvars.SessionFlashPrefix+key, value)
}

func (s *Session) PopFlash(key string, dst interface{}) (bool, error) {
	flashKey := constvars.SessionFlashPrefix + key
	found, err := s.Get(flashKey, dst)
	if found {
		s.Unset(flashKey)
	}
	return found, err
}
