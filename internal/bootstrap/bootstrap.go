// Package bootstrap wires adapters into a ready-to-run migrator.
package bootstrap

import (
	"fmt"

	"github.com/custodia-labs/wpmigrate/internal/adapters/driven/paths"
	"github.com/custodia-labs/wpmigrate/internal/adapters/driven/render"
	"github.com/custodia-labs/wpmigrate/internal/adapters/driven/storage/filesystem"
	"github.com/custodia-labs/wpmigrate/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/wpmigrate/internal/connectors/wordpress"
	"github.com/custodia-labs/wpmigrate/internal/core/domain"
	"github.com/custodia-labs/wpmigrate/internal/core/ports/driving"
	"github.com/custodia-labs/wpmigrate/internal/core/services"
	"github.com/custodia-labs/wpmigrate/internal/normalisers/html"
)

// NewMigrator builds a migrator for validated settings. progress may be nil.
func NewMigrator(settings domain.Settings, progress driving.ProgressFunc) (driving.Migrator, error) {
	cfg, err := wordpress.ParseConfig(settings)
	if err != nil {
		return nil, fmt.Errorf("wordpress config: %w", err)
	}

	converter, err := html.New(settings.Body, settings.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("body converter: %w", err)
	}

	categories := memory.NewTermStore()
	tags := memory.NewTermStore(settings.FilterTags...)
	authors := memory.NewTermStore()

	renderer := render.New(
		render.Options{ContentKeys: settings.ContentKeys, AuthorKeys: settings.AuthorKeys},
		render.Indexes{Categories: categories, Tags: tags, Authors: authors},
		converter,
	)

	ports := services.MigratorPorts{
		Source:     wordpress.NewSource(wordpress.NewClient(cfg)),
		Mapper:     paths.NewMapper(settings.Layout),
		Renderer:   renderer,
		Writer:     filesystem.NewWriter(settings.OutputDir, render.NewEncoder(settings.Format)),
		Categories: categories,
		Tags:       tags,
		Authors:    authors,
		Paths:      memory.NewPathRegistry(),
	}
	return services.NewMigrator(ports, settings, progress), nil
}
