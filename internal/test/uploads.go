package test

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sort"
	"sync"

	domainErrors "github.com/projectkrs/krs/internal/domain/errors"
	"github.com/projectkrs/krs/internal/domain/model"
)

// SelfieStoreStub keeps uploads in memory under "{Stamp}_{name}".
type SelfieStoreStub struct {
	Stamp   int64
	SaveErr error

	mu    sync.Mutex
	Files map[string][]byte
}

// Save records the content or returns SaveErr.
func (s *SelfieStoreStub) Save(r io.Reader, originalName string) (string, error) {
	if s.SaveErr != nil {
		return "", s.SaveErr
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	name := fmt.Sprintf("%d_%s", s.Stamp, originalName)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Files == nil {
		s.Files = make(map[string][]byte)
	}
	s.Files[name] = data
	return name, nil
}

// List returns sorted stored names.
func (s *SelfieStoreStub) List() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, 0, len(s.Files))
	for name := range s.Files {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Locate returns a pseudo path for stored names.
func (s *SelfieStoreStub) Locate(name string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.Files[name]; !ok {
		return "", domainErrors.ErrNotFound
	}
	return "/stub/" + name, nil
}

// Content returns stored bytes for name.
func (s *SelfieStoreStub) Content(name string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.Files[name]
	return bytes.Clone(data), ok
}

// LocationResolverStub returns a fixed location and records requested addresses.
type LocationResolverStub struct {
	Location model.Location

	mu  sync.Mutex
	IPs []string
}

// Resolve records ip and returns Location.
func (s *LocationResolverStub) Resolve(ctx context.Context, ip string) model.Location {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.IPs = append(s.IPs, ip)
	return s.Location
}
