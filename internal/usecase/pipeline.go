package usecase

import (
	"context"
	"log"
	"sort"
	"time"

	"github.com/revivehq/release-notes/internal/domain"
	"github.com/revivehq/release-notes/internal/gateway"
	"github.com/revivehq/release-notes/internal/summary"
	"golang.org/x/sync/errgroup"
)

// Options is the explicit configuration of the pipeline. Nothing here is
// ambient state: the same binary can run against a different repository set
// by constructing a second pipeline.
type Options struct {
	// Org owns every configured repository.
	Org string
	// Repositories defines both the working set and the output order.
	Repositories []string
	// MaxSummaryLength bounds each display title. Default 200.
	MaxSummaryLength int
	// HighlightCount bounds the Highlights section. Default 6.
	HighlightCount int
	// Summary tunes the structured-summary extractor.
	Summary summary.Options
}

func (o Options) withDefaults() Options {
	if o.MaxSummaryLength <= 0 {
		o.MaxSummaryLength = 200
	}
	if o.HighlightCount <= 0 {
		o.HighlightCount = 6
	}
	return o
}

// Pipeline turns merged pull requests into a rendered release document.
// It orchestrates fetching, summarization, classification and assembly.
type Pipeline struct {
	opts     Options
	fetcher  gateway.Fetcher
	selector *summary.Selector
	logger   *log.Logger
}

// NewPipeline creates a Pipeline instance. The fetcher may be nil when only
// Render is used (fixture-driven runs).
func NewPipeline(opts Options, fetcher gateway.Fetcher, logger *log.Logger) *Pipeline {
	opts = opts.withDefaults()
	return &Pipeline{
		opts:     opts,
		fetcher:  fetcher,
		selector: summary.NewSelector(opts.Summary),
		logger:   logger,
	}
}

// BuildDisplayEntry derives the one-line display record for a pull request.
// ok is false when the record is excluded (staging-only titles). The
// display title comes from the body's structured or heading summary when
// present, else from the cleaned title; it is always non-empty, single-line
// and bounded by MaxSummaryLength.
func (p *Pipeline) BuildDisplayEntry(rec domain.PullRequestRecord) (domain.DisplayEntry, bool) {
	category, ok := Classify(rec.Title)
	if !ok {
		return domain.DisplayEntry{}, false
	}
	title := summary.TruncateToOneLine(p.selector.Select(rec.Body), p.opts.MaxSummaryLength)
	if title == "" {
		title = summary.CleanTitle(rec.Title)
	}
	return domain.DisplayEntry{
		Number:   rec.Number,
		Title:    title,
		URL:      rec.URL,
		MergedAt: rec.MergedAt,
		Category: category,
	}, true
}

// GroupEntries builds display entries for every eligible record and groups
// them per configured repository, newest merge first. Grouping is total:
// every configured repository appears, empty or not. Records from
// repositories outside the configured set are dropped.
func (p *Pipeline) GroupEntries(records []domain.PullRequestRecord) []domain.RepoGroup {
	byRepo := make(map[string][]domain.DisplayEntry)
	for _, rec := range records {
		entry, ok := p.BuildDisplayEntry(rec)
		if !ok {
			p.logger.Printf("excluding PR #%d (%s): staging-only", rec.Number, rec.Repository)
			continue
		}
		byRepo[rec.Repository] = append(byRepo[rec.Repository], entry)
	}
	groups := make([]domain.RepoGroup, 0, len(p.opts.Repositories))
	for _, repo := range p.opts.Repositories {
		entries := byRepo[repo]
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].MergedAt.After(entries[j].MergedAt)
		})
		groups = append(groups, domain.RepoGroup{Repository: repo, Entries: entries})
	}
	return groups
}

// Render groups the given records and assembles the release document.
func (p *Pipeline) Render(version string, records []domain.PullRequestRecord) string {
	assembler := NewAssembler(p.opts.HighlightCount)
	return assembler.Render(version, p.GroupEntries(records))
}

// Generate fetches merged pull requests for every configured repository
// concurrently, then renders the release document for them.
func (p *Pipeline) Generate(ctx context.Context, version string, since time.Time) (string, error) {
	p.logger.Printf("fetching merged PRs for %d repositories since %s", len(p.opts.Repositories), since.Format("2006-01-02"))

	results := make([][]domain.PullRequestRecord, len(p.opts.Repositories))
	eg, egCtx := errgroup.WithContext(ctx)
	for i, repo := range p.opts.Repositories {
		i, repo := i, repo
		eg.Go(func() error {
			records, err := p.fetcher.FetchMergedPRs(egCtx, p.opts.Org, repo, since)
			if err != nil {
				return err
			}
			results[i] = records
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return "", err
	}

	var all []domain.PullRequestRecord
	for _, records := range results {
		all = append(all, records...)
	}
	p.logger.Printf("fetched %d merged PRs", len(all))
	return p.Render(version, all), nil
}
