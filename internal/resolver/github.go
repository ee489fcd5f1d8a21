package resolver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-semantic-release/resolve-asset/pkg/release"
	"github.com/google/go-github/v59/github"
)

var ErrMalformedResponse = errors.New("malformed release response")

func missingField(field string) error {
	return fmt.Errorf("%w: missing field %s", ErrMalformedResponse, field)
}

// getGitHubReleaseByTag returns nil without an error if no release exists for the tag.
// The tag is path escaped, go-github inserts it into the URL verbatim.
func getGitHubReleaseByTag(ctx context.Context, ghClient *github.Client, owner, repo, tag string) (*release.Release, error) {
	ghRelease, resp, err := ghClient.Repositories.GetReleaseByTag(ctx, owner, repo, url.PathEscape(tag))
	if resp != nil && resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get release by tag: %w", err)
	}
	return toRelease(ghRelease)
}

// getGitHubReleases fetches the first page of releases in API order.
func getGitHubReleases(ctx context.Context, ghClient *github.Client, owner, repo string) ([]*release.Release, error) {
	ghReleases, _, err := ghClient.Repositories.ListReleases(ctx, owner, repo, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list releases: %w", err)
	}
	ret := make([]*release.Release, 0, len(ghReleases))
	for _, ghRelease := range ghReleases {
		r, err := toRelease(ghRelease)
		if err != nil {
			return nil, err
		}
		ret = append(ret, r)
	}
	return ret, nil
}

func toAsset(gha *github.ReleaseAsset) (*release.Asset, error) {
	if gha == nil {
		return nil, missingField("assets[]")
	}
	if gha.Name == nil {
		return nil, missingField("assets[].name")
	}
	if gha.BrowserDownloadURL == nil {
		return nil, missingField("assets[].browser_download_url")
	}
	return &release.Asset{
		Name: gha.GetName(),
		URL:  gha.GetBrowserDownloadURL(),
	}, nil
}

func toRelease(ghr *github.RepositoryRelease) (*release.Release, error) {
	switch {
	case ghr == nil:
		return nil, missingField("release")
	case ghr.ID == nil:
		return nil, missingField("id")
	case ghr.TagName == nil:
		return nil, missingField("tag_name")
	case ghr.Draft == nil:
		return nil, missingField("draft")
	case ghr.Prerelease == nil:
		return nil, missingField("prerelease")
	case ghr.Assets == nil:
		return nil, missingField("assets")
	}

	assets := make([]*release.Asset, len(ghr.Assets))
	for i, gha := range ghr.Assets {
		a, err := toAsset(gha)
		if err != nil {
			return nil, fmt.Errorf("release %d: %w", ghr.GetID(), err)
		}
		assets[i] = a
	}
	return &release.Release{
		ID:         ghr.GetID(),
		TagName:    ghr.GetTagName(),
		Draft:      ghr.GetDraft(),
		Prerelease: ghr.GetPrerelease(),
		Assets:     assets,
	}, nil
}
