// Package github fetches commit data from the GitHub REST API, normalizing
// it into domain commits. Rate limiting and pagination stay inside this
// package; callers see only the Provider interface.
package github

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gofri/go-github-ratelimit/github_ratelimit"
	gh "github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"

	"gitpulse/internal/core/summary"
	"gitpulse/internal/core/validation"
	perr "gitpulse/internal/platform/errors"
	"gitpulse/internal/platform/logger"
)

// Provider is the data-provider seam the summary workflow depends on
type Provider interface {
	FetchCommits(ctx context.Context, req validation.SummaryRequest) ([]summary.Commit, error)
	Ping(ctx context.Context) error
}

// Options configures the client
type Options struct {
	// Token is a personal access token; empty means unauthenticated
	Token string
	// BaseURL points at a GitHub Enterprise instance when set
	BaseURL string
	// PerPage caps page size, defaulting to 100
	PerPage int
}

// Client is the real GitHub-backed Provider
type Client struct {
	gh      *gh.Client
	perPage int
}

// New builds a Client whose transport waits out secondary rate limits and
// carries the token when one is configured
func New(opts Options) (*Client, error) {
	waiter, err := github_ratelimit.NewRateLimitWaiter(nil,
		github_ratelimit.WithSingleSleepLimit(time.Hour, nil),
	)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUnavailable, "build rate limit waiter")
	}

	var transport http.RoundTripper = waiter
	if opts.Token != "" {
		transport = &oauth2.Transport{
			Base:   waiter,
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: opts.Token}),
		}
	}

	client := gh.NewClient(&http.Client{Transport: transport})
	if opts.BaseURL != "" {
		client, err = client.WithEnterpriseURLs(opts.BaseURL, opts.BaseURL)
		if err != nil {
			return nil, perr.Wrap(err, perr.ErrorCodeInvalidArgument, "enterprise base url")
		}
	}

	perPage := opts.PerPage
	if perPage <= 0 || perPage > 100 {
		perPage = 100
	}
	return &Client{gh: client, perPage: perPage}, nil
}

// FetchCommits lists commits for every requested repository, filtered by the
// validated date range and the optional branch and author filters. Results
// arrive in repository order, then reverse-chronological within a repository
// as GitHub returns them.
func (c *Client) FetchCommits(ctx context.Context, req validation.SummaryRequest) ([]summary.Commit, error) {
	log := logger.C(ctx)

	authors := req.Users
	if len(authors) == 0 {
		// one unfiltered pass per repository
		authors = []string{""}
	}

	var out []summary.Commit
	for _, repo := range req.Repositories {
		owner, name, ok := strings.Cut(repo, "/")
		if !ok {
			return nil, perr.InvalidArgf("malformed repository %q", repo)
		}
		for _, author := range authors {
			commits, err := c.listRepoCommits(ctx, owner, name, author, req)
			if err != nil {
				return nil, err
			}
			out = append(out, commits...)
		}
		log.Debug().Str("repository", repo).Int("total", len(out)).Msg("repository fetched")
	}
	return out, nil
}

func (c *Client) listRepoCommits(ctx context.Context, owner, name, author string, req validation.SummaryRequest) ([]summary.Commit, error) {
	opts := &gh.CommitsListOptions{
		SHA:    req.Branch,
		Author: author,
		Since:  req.DateRange.Start,
		// the range is a closed interval of calendar days
		Until:       req.DateRange.End.Add(24 * time.Hour),
		ListOptions: gh.ListOptions{PerPage: c.perPage},
	}

	repo := owner + "/" + name
	var out []summary.Commit
	for {
		page, resp, err := c.gh.Repositories.ListCommits(ctx, owner, name, opts)
		if err != nil {
			return nil, classify(err, repo)
		}
		for _, rc := range page {
			out = append(out, normalize(repo, rc))
		}
		if resp.NextPage == 0 {
			return out, nil
		}
		opts.Page = resp.NextPage
	}
}

// Ping verifies connectivity and credentials against the API root
func (c *Client) Ping(ctx context.Context) error {
	if _, _, err := c.gh.Zen(ctx); err != nil {
		return classify(err, "")
	}
	return nil
}

// normalize maps an API commit onto the domain shape. The list endpoint does
// not return per-commit diff stats, so additions/deletions stay zero here.
func normalize(repo string, rc *gh.RepositoryCommit) summary.Commit {
	c := summary.Commit{
		SHA:        rc.GetSHA(),
		Repository: repo,
	}
	if a := rc.GetAuthor(); a != nil {
		c.Author = a.GetLogin()
	}
	if gc := rc.GetCommit(); gc != nil {
		c.Message = gc.GetMessage()
		if c.Author == "" {
			c.Author = gc.GetAuthor().GetName()
		}
		c.Date = gc.GetAuthor().GetDate().Time
	}
	if s := rc.GetStats(); s != nil {
		c.Additions = s.GetAdditions()
		c.Deletions = s.GetDeletions()
	}
	return c
}

// classify maps API failures onto the project error taxonomy
func classify(err error, repo string) error {
	var where string
	if repo != "" {
		where = " for " + repo
	}

	var rle *gh.RateLimitError
	var arle *gh.AbuseRateLimitError
	if errors.As(err, &rle) || errors.As(err, &arle) {
		return perr.Wrap(err, perr.ErrorCodeTooManyRequests, "github rate limited"+where)
	}

	var ger *gh.ErrorResponse
	if errors.As(err, &ger) && ger.Response != nil {
		switch ger.Response.StatusCode {
		case http.StatusNotFound:
			return perr.Wrap(err, perr.ErrorCodeNotFound, "repository not found"+where)
		case http.StatusUnauthorized:
			return perr.Wrap(err, perr.ErrorCodeUnauthorized, "github auth failed")
		case http.StatusForbidden:
			return perr.Wrap(err, perr.ErrorCodeForbidden, "github access denied"+where)
		}
	}
	return perr.Wrap(err, perr.ErrorCodeUpstream, "github request failed"+where)
}
