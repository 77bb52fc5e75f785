package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/custodia-labs/wpmigrate/internal/core/domain"
	"github.com/custodia-labs/wpmigrate/internal/core/ports/driven"
	"github.com/custodia-labs/wpmigrate/internal/core/ports/driving"
	"github.com/custodia-labs/wpmigrate/internal/logger"
)

// Ensure Migrator implements the interface.
var _ driving.Migrator = (*Migrator)(nil)

// MigratorPorts groups the adapters a Migrator drives.
type MigratorPorts struct {
	Source   driven.ContentSource
	Mapper   driven.PathMapper
	Renderer driven.Renderer
	Writer   driven.DocumentWriter

	Categories driven.TermIndex
	Tags       driven.TermIndex
	Authors    driven.TermIndex
	Paths      driven.PathRegistry
}

// Migrator exports a WordPress site to a static-site tree.
//
// A run indexes categories, tags and authors, then walks every configured
// content type and maps, renders and writes each record in turn. The first
// error of any stage fails the run.
type Migrator struct {
	ports    MigratorPorts
	settings domain.Settings
	progress driving.ProgressFunc

	mu     sync.RWMutex
	status domain.RunStatus
}

// NewMigrator creates a migrator. progress may be nil.
func NewMigrator(ports MigratorPorts, settings domain.Settings, progress driving.ProgressFunc) *Migrator {
	return &Migrator{
		ports:    ports,
		settings: settings,
		progress: progress,
	}
}

// Status returns a snapshot of the current or last run.
func (m *Migrator) Status() domain.RunStatus {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status
}

// Run executes one migration. It returns the error that failed the run.
func (m *Migrator) Run(ctx context.Context) error {
	m.setStatus(func(s *domain.RunStatus) {
		*s = domain.RunStatus{RunID: uuid.New().String(), State: domain.RunRunning}
	})
	logger.Info("Starting migration of %s into %s", m.settings.Endpoint(), m.ports.Writer.Root())

	if err := m.run(ctx); err != nil {
		m.setStatus(func(s *domain.RunStatus) {
			s.State = domain.RunFailed
			s.Err = err
		})
		logger.Error("Migration failed: %v", err)
		return err
	}

	m.setStatus(func(s *domain.RunStatus) { s.State = domain.RunDone })
	status := m.Status()
	logger.Info("Migration complete: %d written, %d unchanged, %d skipped",
		status.Written, status.Unchanged, status.Skipped)
	return nil
}

func (m *Migrator) run(ctx context.Context) error {
	logger.Section("Indexing terms")
	if err := m.indexTerms(ctx, domain.TaxonomyCategory, m.ports.Categories); err != nil {
		return fmt.Errorf("index categories: %w", err)
	}
	if err := m.indexTerms(ctx, domain.TaxonomyTag, m.ports.Tags); err != nil {
		return fmt.Errorf("index tags: %w", err)
	}
	if err := m.indexAuthors(ctx); err != nil {
		return fmt.Errorf("index authors: %w", err)
	}

	for _, contentType := range m.settings.ContentTypes {
		logger.Section("Exporting " + contentType.Collection())
		if err := m.export(ctx, contentType); err != nil {
			return fmt.Errorf("export %s: %w", contentType.Collection(), err)
		}
	}
	return nil
}

func (m *Migrator) indexTerms(ctx context.Context, taxonomy domain.Taxonomy, index driven.TermIndex) error {
	for term, err := range m.ports.Source.Terms(ctx, taxonomy) {
		if err != nil {
			return err
		}
		if err := addTerm(index, term); err != nil {
			return err
		}
	}
	logger.Info("Indexed %d %s terms", index.Len(), taxonomy)
	return nil
}

func (m *Migrator) indexAuthors(ctx context.Context) error {
	for author, err := range m.ports.Source.Authors(ctx) {
		if err != nil {
			return err
		}
		term := author.Term()
		if key := m.ports.Mapper.AuthorKey(author); key != "" {
			term.Slug = key
		}
		if err := addTerm(m.ports.Authors, term); err != nil {
			return err
		}
		if !m.settings.WriteAuthors {
			continue
		}
		if err := m.writeAuthor(ctx, author); err != nil {
			return err
		}
	}
	logger.Info("Indexed %d authors", m.ports.Authors.Len())
	return nil
}

func (m *Migrator) writeAuthor(ctx context.Context, author domain.Author) error {
	path, err := m.ports.Mapper.MapAuthor(author)
	if err != nil {
		return &domain.RenderError{RecordID: author.ID, Field: "slug", Err: err}
	}
	if err := m.ports.Paths.Claim(path, fmt.Sprintf("author %d", author.ID)); err != nil {
		return &domain.WriteError{Path: path, Err: err}
	}

	doc, err := m.ports.Renderer.RenderAuthor(author, path)
	if err != nil {
		return err
	}
	return m.write(ctx, doc)
}

func (m *Migrator) export(ctx context.Context, contentType domain.ContentType) error {
	for rec, err := range m.ports.Source.Records(ctx, contentType) {
		if err != nil {
			return err
		}
		if err := m.process(ctx, rec); err != nil {
			return fmt.Errorf("%s %d: %w", rec.Type, rec.ID, err)
		}
	}
	return nil
}

// process runs one record through map, render and write.
func (m *Migrator) process(ctx context.Context, rec domain.ContentRecord) error {
	if rec.Type == domain.ContentPost && m.ports.Tags.IsFiltered(rec.TagIDs) {
		logger.Debug("skipping %s %d: filtered tag", rec.Type, rec.ID)
		m.update(func(s *domain.RunStatus) { s.Skipped++ })
		return nil
	}

	loc, err := m.ports.Mapper.Map(rec)
	if err != nil {
		return &domain.RenderError{RecordID: rec.ID, Field: "link", Err: err}
	}
	if err := m.ports.Paths.Claim(loc.Path, fmt.Sprintf("%s %d", rec.Type, rec.ID)); err != nil {
		return &domain.WriteError{Path: loc.Path, Err: err}
	}

	doc, err := m.ports.Renderer.Render(rec, loc)
	if err != nil {
		return err
	}
	return m.write(ctx, doc)
}

func (m *Migrator) write(ctx context.Context, doc *domain.OutputDocument) error {
	result, err := m.ports.Writer.Write(ctx, doc)
	if err != nil {
		return err
	}

	m.update(func(s *domain.RunStatus) {
		s.Current = doc.Path
		if result == domain.WriteUnchanged {
			s.Unchanged++
		} else {
			s.Written++
		}
	})
	return nil
}

// update changes the status and reports progress.
func (m *Migrator) update(fn func(s *domain.RunStatus)) {
	m.setStatus(fn)
	if m.progress != nil {
		m.progress(m.Status())
	}
}

func (m *Migrator) setStatus(fn func(s *domain.RunStatus)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	fn(&m.status)
}

// addTerm indexes a term. A term already present (the API repeating an
// entry, or a second run over the same index) is kept as is.
func addTerm(index driven.TermIndex, term domain.Term) error {
	err := index.Add(term)
	if errors.Is(err, domain.ErrAlreadyExists) {
		logger.Debug("%s %d already indexed", term.Taxonomy, term.ID)
		return nil
	}
	return err
}
