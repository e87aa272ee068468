// Package catalog discovers NWB extension record repositories and builds
// the test matrix consumed by CI workflows.
//
// Record repositories follow a naming convention (ndx-*-record) and contain
// a single ndx-meta.yaml descriptor pointing at the actual extension. The
// catalog pipeline lists those repos, fetches each descriptor, drops known
// inactive extensions, and falls back to a static list when discovery
// yields nothing usable.
package catalog

import (
	"context"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/nwb-extensions/extensions-matrix/pkg/integrations/github"
)

const (
	// Org is the GitHub organization hosting the extension catalog.
	Org = "nwb-extensions"

	// MetaFile is the descriptor filename expected in every record repo.
	MetaFile = "ndx-meta.yaml"

	recordPrefix = "ndx-"
	recordSuffix = "-record"
)

// Extension is one normalized entry of the output matrix.
// Field order determines the JSON key order of the emitted records.
type Extension struct {
	Name       string `json:"name" toml:"name"`
	Repository string `json:"repository" toml:"repository"`
	PyPI       string `json:"pypi" toml:"pypi"`
}

// Matrix is the workflow matrix wrapper emitted to CI.
type Matrix struct {
	Extension []Extension `json:"extension"`
}

// Source abstracts the GitHub operations the builder needs.
// *github.Client satisfies it.
type Source interface {
	ListOrgRepos(ctx context.Context, org string) ([]github.Repo, error)
	FetchRawFile(ctx context.Context, org, repo, branch, path string) (string, error)
}

// Builder runs the discovery pipeline and assembles the matrix.
type Builder struct {
	src    Source
	logger *log.Logger
}

// NewBuilder creates a Builder using src for GitHub access.
// Pass nil for logger to use the default logger.
func NewBuilder(src Source, logger *log.Logger) *Builder {
	if logger == nil {
		logger = log.Default()
	}
	return &Builder{src: src, logger: logger}
}

// ListRecordRepos returns the organization's extension record repositories
// in listing order. The name match is exact and case-sensitive: the repo
// must start with "ndx-" and end with "-record". A listing failure aborts
// discovery entirely; there is no partial result.
func (b *Builder) ListRecordRepos(ctx context.Context) ([]github.Repo, error) {
	repos, err := b.src.ListOrgRepos(ctx, Org)
	if err != nil {
		return nil, err
	}

	var records []github.Repo
	for _, r := range repos {
		if strings.HasPrefix(r.Name, recordPrefix) && strings.HasSuffix(r.Name, recordSuffix) {
			records = append(records, r)
		}
	}

	b.logger.Info("Found extension record repositories", "count", len(records))
	return records, nil
}

// FetchExtension retrieves and validates a record repo's descriptor.
// It returns nil when the entry should be skipped: fetch, parse, and
// validation failures are logged as warnings, inactive extensions at info
// level. Failures never propagate to the caller, so one broken record
// cannot affect the others.
func (b *Builder) FetchExtension(ctx context.Context, repo github.Repo) *Extension {
	raw, err := b.src.FetchRawFile(ctx, Org, repo.Name, repo.Branch(), MetaFile)
	if err != nil {
		b.logger.Warn("Could not fetch extension metadata", "repo", repo.Name, "err", err)
		return nil
	}

	meta, err := parseMetadata([]byte(raw))
	if err != nil {
		b.logger.Warn("Invalid extension metadata", "repo", repo.Name, "err", err)
		return nil
	}

	if Inactive(meta.Name) {
		b.logger.Info("Skipping inactive extension", "name", meta.Name)
		return nil
	}

	return &Extension{
		Name:       meta.Name,
		Repository: meta.Src,
		PyPI:       meta.Pip,
	}
}

// Build assembles the complete matrix. A failed listing is downgraded to
// zero candidates rather than an error, and an empty result set is replaced
// by the fallback list in its entirety. The returned matrix is therefore
// either all live entries in discovery order or the fallback list verbatim,
// never a mixture.
func (b *Builder) Build(ctx context.Context) Matrix {
	repos, err := b.ListRecordRepos(ctx)
	if err != nil {
		b.logger.Error("Failed to fetch repository list", "err", err)
		repos = nil
	}

	var extensions []Extension
	for _, repo := range repos {
		if ext := b.FetchExtension(ctx, repo); ext != nil {
			extensions = append(extensions, *ext)
		}
	}
	b.logger.Info("Fetched extensions from catalog", "count", len(extensions))

	if len(extensions) == 0 {
		b.logger.Warn("Catalog unavailable, using fallback extensions list")
		extensions = FallbackExtensions()
	}

	return Matrix{Extension: extensions}
}
