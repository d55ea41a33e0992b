// Package github answers whether a repository exists for an owner.
//
// The primary probe is a repository-metadata GET against the GitHub API;
// it is fast but may be rate-limited or blocked. The fallback is a
// git ls-remote probe against the candidate clone URL, which works against
// any reachable remote. Errors from either probe are swallowed; callers
// only see the boolean result.
package github

import (
	"context"
	"net/http"

	gh "github.com/google/go-github/v82/github"
	"github.com/sahilm/fuzzy"

	"github.com/jftuga/gclone/internal/config"
	"github.com/jftuga/gclone/internal/git"
	"github.com/jftuga/gclone/internal/log"
)

// Checker probes for repository existence.
type Checker struct {
	cfg    config.Config
	client *gh.Client

	// probe is the fallback remote-reference probe, injectable for tests.
	probe func(ctx context.Context, url string) error
}

// NewChecker creates a Checker for the configured host. An unusable
// api_base silently degrades to the public API; the ls-remote fallback
// still covers the configured host.
func NewChecker(cfg config.Config) *Checker {
	client := gh.NewClient(nil)
	if cfg.APIBase != "" {
		if enterprise, err := client.WithEnterpriseURLs(cfg.APIBase, cfg.APIBase); err == nil {
			client = enterprise
		}
	}
	return &Checker{
		cfg:    cfg,
		client: client,
		probe:  git.LsRemote,
	}
}

// Exists reports whether owner/repo exists. The metadata probe confirms
// existence only on HTTP 200; every other outcome (404, rate limit,
// network error, malformed response) falls through to the ls-remote probe.
func (c *Checker) Exists(ctx context.Context, owner, repo string) bool {
	l := log.FromContext(ctx)

	_, resp, err := c.client.Repositories.Get(ctx, owner, repo)
	if err == nil && resp != nil && resp.StatusCode == http.StatusOK {
		l.Debug("repository found via API", "owner", owner, "repo", repo)
		return true
	}
	l.Debug("API probe inconclusive, trying ls-remote", "owner", owner, "repo", repo, "err", err)

	if err := c.probe(ctx, c.cfg.RemoteURL(owner, repo)); err == nil {
		l.Debug("repository found via ls-remote", "owner", owner, "repo", repo)
		return true
	}
	return false
}

// Suggest returns up to max repository names under owner that resemble
// the requested name. Best-effort: any listing failure yields nil.
func (c *Checker) Suggest(ctx context.Context, owner, repo string, max int) []string {
	names := c.listRepoNames(ctx, owner)
	if len(names) == 0 {
		return nil
	}

	matches := fuzzy.Find(repo, names)
	if len(matches) > max {
		matches = matches[:max]
	}
	suggestions := make([]string, 0, len(matches))
	for _, m := range matches {
		suggestions = append(suggestions, m.Str)
	}
	return suggestions
}

// listRepoNames lists public repository names for a user or organization.
func (c *Checker) listRepoNames(ctx context.Context, owner string) []string {
	opts := gh.ListOptions{PerPage: 100}

	repos, _, err := c.client.Repositories.ListByUser(ctx, owner,
		&gh.RepositoryListByUserOptions{ListOptions: opts})
	if err != nil {
		orgRepos, _, orgErr := c.client.Repositories.ListByOrg(ctx, owner,
			&gh.RepositoryListByOrgOptions{ListOptions: opts})
		if orgErr != nil {
			return nil
		}
		repos = orgRepos
	}

	names := make([]string, 0, len(repos))
	for _, r := range repos {
		if name := r.GetName(); name != "" {
			names = append(names, name)
		}
	}
	return names
}
