package i18n

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// Store persists the language preference.
type Store interface {
	Load() (Locale, error)
	Save(Locale) error
}

type preferences struct {
	Language string `yaml:"language"`
}

// FileStore keeps the preference in a small YAML file.
type FileStore struct {
	path string
}

// NewFileStore returns a store backed by path. The file is created on the
// first Save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file.
func (s *FileStore) Path() string {
	return s.path
}

// Load returns the stored locale, or Default when the file is missing or
// holds an unsupported value. Only unreadable or malformed files are errors.
func (s *FileStore) Load() (Locale, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return Default, nil
	}
	if err != nil {
		return Default, err
	}

	var p preferences
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Default, fmt.Errorf("parsing %s: %w", s.path, err)
	}
	return ParseOr(p.Language, Default), nil
}

// Save writes the locale, creating parent directories as needed.
func (s *FileStore) Save(l Locale) error {
	if !l.Valid() {
		return fmt.Errorf("unsupported locale %q", l)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(preferences{Language: string(l)})
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0644)
}

// MemoryStore is an in-process Store.
type MemoryStore struct {
	mu     sync.Mutex
	locale Locale
	saves  int
}

// NewMemoryStore returns a store that starts with l. An invalid l loads as
// Default.
func NewMemoryStore(l Locale) *MemoryStore {
	return &MemoryStore{locale: l}
}

// Load returns the held locale.
func (s *MemoryStore) Load() (Locale, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ParseOr(string(s.locale), Default), nil
}

// Save replaces the held locale.
func (s *MemoryStore) Save(l Locale) error {
	if !l.Valid() {
		return fmt.Errorf("unsupported locale %q", l)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.locale = l
	s.saves++
	return nil
}

// Saves returns how many times Save succeeded.
func (s *MemoryStore) Saves() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}
