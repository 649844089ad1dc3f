package xmlstore

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"binroute-backend/internal/models"
)

// Document names the five independent record files. Each one owns a
// disjoint record kind; they cross-reference each other by integer id only.
type Document string

const (
	DocBins     Document = "trashCan.xml"
	DocUsers    Document = "users.xml"
	DocTours    Document = "tournee.xml"
	DocVehicles Document = "vehicule.xml"
	DocReports  Document = "rapport.xml"
)

var (
	// ErrNotFound means the target record is absent from its document.
	ErrNotFound = errors.New("record not found")
	// ErrMalformedInput means a request carried a missing or invalid
	// identifier and was rejected before any I/O.
	ErrMalformedInput = errors.New("malformed input")
)

// Store is a file-backed document store. Writes take a per-document
// mutex so two handlers in this process cannot interleave a single
// file write; the read-compute-write sequence around it is still not
// atomic, and the last full-document overwrite wins.
type Store struct {
	dataDir string

	mu    sync.Mutex
	locks map[Document]*sync.Mutex
}

func New(dataDir string) *Store {
	return &Store{
		dataDir: dataDir,
		locks:   make(map[Document]*sync.Mutex),
	}
}

// Path returns the absolute location of a document inside the data dir.
func (s *Store) Path(doc Document) string {
	return filepath.Join(s.dataDir, string(doc))
}

func (s *Store) lock(doc Document) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[doc]
	if !ok {
		l = &sync.Mutex{}
		s.locks[doc] = l
	}
	return l
}

// Read loads a document's full text. A missing or unreadable file is a
// hard failure here; callers that treat absence as "empty document"
// use ReadOrEmpty.
func (s *Store) Read(doc Document) (string, error) {
	data, err := os.ReadFile(s.Path(doc))
	if err != nil {
		return "", fmt.Errorf("read %s: %w", doc, err)
	}
	return string(data), nil
}

// ReadOrEmpty loads a document's text, treating a missing file as an
// empty document. Any other read failure still propagates.
func (s *Store) ReadOrEmpty(doc Document) (string, error) {
	data, err := os.ReadFile(s.Path(doc))
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("read %s: %w", doc, err)
	}
	return string(data), nil
}

// Write overwrites a document with new full text.
func (s *Store) Write(doc Document, text string) error {
	l := s.lock(doc)
	l.Lock()
	defer l.Unlock()

	if err := os.MkdirAll(s.dataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	if err := os.WriteFile(s.Path(doc), []byte(text), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", doc, err)
	}
	return nil
}

// Exists reports whether a document file is present on disk.
func (s *Store) Exists(doc Document) bool {
	_, err := os.Stat(s.Path(doc))
	return err == nil
}

// LoadBins reads and parses the bin document.
func (s *Store) LoadBins() ([]models.Bin, error) {
	text, err := s.Read(DocBins)
	if err != nil {
		return nil, err
	}
	return ParseBins(text), nil
}

// LoadUsers reads and parses the user document.
func (s *Store) LoadUsers() ([]models.User, error) {
	text, err := s.Read(DocUsers)
	if err != nil {
		return nil, err
	}
	return ParseUsers(text), nil
}

// LoadTours reads and parses the tour document.
func (s *Store) LoadTours() ([]models.Tour, error) {
	text, err := s.Read(DocTours)
	if err != nil {
		return nil, err
	}
	return ParseTours(text), nil
}

// LoadVehicles reads and parses the vehicle document.
func (s *Store) LoadVehicles() ([]models.Vehicle, error) {
	text, err := s.Read(DocVehicles)
	if err != nil {
		return nil, err
	}
	return ParseVehicles(text), nil
}

// LoadReports reads and parses the report document. A missing file
// yields an empty list: no reports have been filed yet.
func (s *Store) LoadReports() ([]models.Report, error) {
	text, err := s.ReadOrEmpty(DocReports)
	if err != nil {
		return nil, err
	}
	return ParseReports(text), nil
}

// MarkBinEmpty applies the patch engine against the bin document on
// disk and persists the result. The document is rewritten in full.
func (s *Store) MarkBinEmpty(binID int) error {
	text, err := s.Read(DocBins)
	if err != nil {
		return err
	}
	patched, err := UpdateBinStatus(text, binID, models.StatusTextEmpty)
	if err != nil {
		return err
	}
	if err := s.Write(DocBins, patched); err != nil {
		return err
	}
	log.Printf("bin %d marked empty in %s", binID, DocBins)
	return nil
}
