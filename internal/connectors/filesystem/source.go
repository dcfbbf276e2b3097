package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/ceplan/fichas/internal/core/domain"
	"github.com/ceplan/fichas/internal/core/ports/driven"
	"github.com/ceplan/fichas/internal/logger"
)

// Ensure Source implements the interface.
var _ driven.InputSource = (*Source)(nil)

// File name suffixes of the two inputs of a ficha.
const (
	ArticleSuffix   = ".texto.txt"
	ReferenceSuffix = ".refs.txt"
)

// Source reads ficha inputs from a flat directory holding one
// <code>.texto.txt and one <code>.refs.txt per ficha.
type Source struct {
	root string

	mu      sync.Mutex
	watcher *fsnotify.Watcher
	last    map[string]domain.FichaInput
}

// New creates a filesystem input source rooted at dir.
func New(dir string) *Source {
	return &Source{
		root: dir,
		last: make(map[string]domain.FichaInput),
	}
}

// Root returns the watched directory.
func (s *Source) Root() string {
	return s.root
}

// ArticlePath returns the article file path for a code.
func (s *Source) ArticlePath(code string) string {
	return filepath.Join(s.root, code+ArticleSuffix)
}

// ReferencePath returns the reference file path for a code.
func (s *Source) ReferencePath(code string) string {
	return filepath.Join(s.root, code+ReferenceSuffix)
}

// List returns every complete ficha input in the directory, ordered by code.
// Fichas with only one of the two files are skipped.
func (s *Source) List(ctx context.Context) ([]domain.FichaInput, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, fmt.Errorf("reading input directory: %w", err)
	}

	codes := make(map[string]struct{})
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if code, ok := codeOf(entry.Name()); ok {
			codes[code] = struct{}{}
		}
	}

	sorted := make([]string, 0, len(codes))
	for code := range codes {
		sorted = append(sorted, code)
	}
	sort.Strings(sorted)

	inputs := make([]domain.FichaInput, 0, len(sorted))
	for _, code := range sorted {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		input, err := s.Get(ctx, code)
		if errors.Is(err, domain.ErrIncompleteInput) {
			logger.Ficha(code).Debug("skipped: %v", err)
			continue
		}
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, *input)
	}

	return inputs, nil
}

// Get reads the two input files of one ficha.
func (s *Source) Get(_ context.Context, code string) (*domain.FichaInput, error) {
	input := domain.FichaInput{Code: code}
	if err := input.Validate(); err != nil {
		return nil, fmt.Errorf("ficha code %q: %w", code, err)
	}

	article, articleErr := readText(s.ArticlePath(code))
	references, referenceErr := readText(s.ReferencePath(code))

	switch {
	case os.IsNotExist(articleErr) && os.IsNotExist(referenceErr):
		return nil, fmt.Errorf("ficha %s: %w", code, domain.ErrNotFound)
	case os.IsNotExist(articleErr):
		return nil, fmt.Errorf("ficha %s: missing %s: %w", code, filepath.Base(s.ArticlePath(code)), domain.ErrIncompleteInput)
	case os.IsNotExist(referenceErr):
		return nil, fmt.Errorf("ficha %s: missing %s: %w", code, filepath.Base(s.ReferencePath(code)), domain.ErrIncompleteInput)
	case articleErr != nil:
		return nil, fmt.Errorf("reading article of %s: %w", code, articleErr)
	case referenceErr != nil:
		return nil, fmt.Errorf("reading references of %s: %w", code, referenceErr)
	}

	input.ArticleText = article
	input.ReferenceText = references
	return &input, nil
}

// Watch emits a change whenever one of the input files of a ficha is
// created, written, removed or renamed. A write that leaves both files
// unchanged since the last emitted change is not reported again.
func (s *Source) Watch(ctx context.Context) (<-chan domain.InputChange, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := watcher.Add(s.root); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watching %s: %w", s.root, err)
	}

	s.mu.Lock()
	if s.watcher != nil {
		s.mu.Unlock()
		watcher.Close()
		return nil, errors.New("source is already being watched")
	}
	s.watcher = watcher
	s.mu.Unlock()

	s.prime(ctx)

	changes := make(chan domain.InputChange)
	go s.watchLoop(ctx, watcher, changes)
	return changes, nil
}

func (s *Source) watchLoop(ctx context.Context, watcher *fsnotify.Watcher, changes chan<- domain.InputChange) {
	defer close(changes)
	defer s.Close() //nolint:errcheck // watcher errors are logged in the loop

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			change := s.handleFsEvent(event)
			if change == nil {
				continue
			}
			select {
			case changes <- *change:
			case <-ctx.Done():
				return
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logger.Warn("watch %s: %v", s.root, err)
		}
	}
}

// prime records the current inputs so that later events are compared
// against what is already on disk.
func (s *Source) prime(ctx context.Context) {
	inputs, err := s.List(ctx)
	if err != nil {
		logger.Warn("listing %s: %v", s.root, err)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, in := range inputs {
		s.last[in.Code] = in
	}
}

// handleFsEvent turns a filesystem event into a ficha change, or nil when
// the event does not concern a ficha input or changes nothing.
func (s *Source) handleFsEvent(event fsnotify.Event) *domain.InputChange {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return nil
	}

	code, ok := codeOf(filepath.Base(event.Name))
	if !ok {
		return nil
	}

	input, err := s.Get(context.Background(), code)

	s.mu.Lock()
	defer s.mu.Unlock()
	prev, seen := s.last[code]

	if err != nil {
		if !errors.Is(err, domain.ErrIncompleteInput) && !errors.Is(err, domain.ErrNotFound) {
			logger.Ficha(code).Warn("%v", err)
			return nil
		}
		if !seen {
			return nil
		}
		delete(s.last, code)
		return &domain.InputChange{Code: code, Removed: true}
	}

	if seen && prev == *input {
		return nil
	}
	s.last[code] = *input
	return &domain.InputChange{Code: code, Input: *input}
}

// Close stops an active watch. It is safe to call more than once.
func (s *Source) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.watcher == nil {
		return nil
	}
	err := s.watcher.Close()
	s.watcher = nil
	return err
}

// codeOf returns the ficha code of an input file name.
// Hidden files (editor swap files, ._ resource forks) are ignored.
func codeOf(name string) (string, bool) {
	if strings.HasPrefix(name, ".") {
		return "", false
	}
	for _, suffix := range []string{ArticleSuffix, ReferenceSuffix} {
		if code, ok := strings.CutSuffix(name, suffix); ok && code != "" {
			return code, true
		}
	}
	return "", false
}

// readText reads a text file as UTF-8. A byte order mark selects UTF-16
// (as saved by some Windows editors) and is dropped; invalid UTF-8 bytes
// become U+FFFD.
func readText(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	data, err := io.ReadAll(transform.NewReader(f, decoder))
	if err != nil {
		return "", err
	}
	return string(data), nil
}
