// Package gateway provides a gateway to the GitHub API,
// abstracting away the underlying REST and GraphQL clients.
package gateway

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/google/go-github/v62/github"
	"github.com/shurcooL/githubv4"
	"golang.org/x/oauth2"

	"github.com/gofri/go-github-ratelimit/github_ratelimit"

	"github.com/revivehq/release-notes/internal/domain"
)

// Fetcher defines the behavior of a gateway for fetching information from GitHub.
type Fetcher interface {
	FetchMergedPRs(ctx context.Context, owner, repo string, since time.Time) ([]domain.PullRequestRecord, error)
	FetchLatestReleaseTag(ctx context.Context, owner, repo string) (string, error)
}

// GitHubGateway is the concrete implementation of the Fetcher interface.
type GitHubGateway struct {
	restClient    *github.Client
	graphqlClient *githubv4.Client
	logger        *log.Logger
}

// mergedPRQuery searches merged pull requests, carrying the body text the
// summary pipeline needs.
type mergedPRQuery struct {
	Search struct {
		PageInfo struct {
			HasNextPage bool
			EndCursor   githubv4.String
		}
		Edges []struct {
			Node struct {
				Typename    string `graphql:"__typename"`
				PullRequest struct {
					Number     githubv4.Int
					Title      githubv4.String
					Body       githubv4.String
					URL        githubv4.URI
					MergedAt   githubv4.DateTime
					Repository struct {
						Name string
					}
				} `graphql:"... on PullRequest"`
			}
		}
	} `graphql:"search(query: $query, type: ISSUE, first: 50, after: $cursor)"`
}

// NewGitHubGateway is a constructor that creates a new instance of GitHubGateway.
func NewGitHubGateway(token string, logger *log.Logger) (Fetcher, error) {
	rateLimitWaiter, err := github_ratelimit.NewRateLimitWaiter(nil, github_ratelimit.WithSingleSleepLimit(1*time.Hour, nil))
	if err != nil {
		return nil, fmt.Errorf("failed to create rate limit waiter: %w", err)
	}
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	httpClient := &http.Client{
		Transport: &oauth2.Transport{
			Base:   rateLimitWaiter,
			Source: ts,
		},
	}
	return &GitHubGateway{
		restClient:    github.NewClient(httpClient),
		graphqlClient: githubv4.NewClient(httpClient),
		logger:        logger,
	}, nil
}

// FetchMergedPRs returns every pull request merged into owner/repo on or
// after since.
func (g *GitHubGateway) FetchMergedPRs(ctx context.Context, owner, repo string, since time.Time) ([]domain.PullRequestRecord, error) {
	query := fmt.Sprintf("repo:%s/%s is:pr is:merged merged:>=%s", owner, repo, since.Format("2006-01-02"))
	g.logger.Printf("Fetching merged PRs: %s", query)

	variables := map[string]interface{}{
		"query":  githubv4.String(query),
		"cursor": (*githubv4.String)(nil),
	}

	var records []domain.PullRequestRecord
	for {
		var q mergedPRQuery
		if err := g.graphqlClient.Query(ctx, &q, variables); err != nil {
			return nil, fmt.Errorf("failed to execute GraphQL query for merged PRs: %w", err)
		}
		for _, edge := range q.Search.Edges {
			if edge.Node.Typename != "PullRequest" {
				continue
			}
			pr := edge.Node.PullRequest
			records = append(records, domain.PullRequestRecord{
				Number:     int(pr.Number),
				Title:      string(pr.Title),
				Body:       string(pr.Body),
				URL:        pr.URL.String(),
				MergedAt:   pr.MergedAt.Time,
				Repository: pr.Repository.Name,
			})
		}
		if !q.Search.PageInfo.HasNextPage {
			break
		}
		variables["cursor"] = githubv4.NewString(q.Search.PageInfo.EndCursor)
		g.logger.Println("  Fetching next page of merged pull requests...")
	}
	g.logger.Printf("Completed fetching %d merged PRs for %s/%s", len(records), owner, repo)
	return records, nil
}

// FetchLatestReleaseTag returns the tag name of the most recent release of
// owner/repo, using the REST API.
func (g *GitHubGateway) FetchLatestReleaseTag(ctx context.Context, owner, repo string) (string, error) {
	g.logger.Printf("Fetching latest release of %s/%s...", owner, repo)
	release, _, err := g.restClient.Repositories.GetLatestRelease(ctx, owner, repo)
	if err != nil {
		return "", fmt.Errorf("failed to fetch latest release with REST API: %w", err)
	}
	return release.GetTagName(), nil
}
