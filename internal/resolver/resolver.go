package resolver

import (
	"context"
	"fmt"
	"net/url"

	"github.com/go-semantic-release/resolve-asset/pkg/release"
	"github.com/google/go-github/v59/github"
	"github.com/sirupsen/logrus"
)

type outcome int

const (
	outcomeNotFound outcome = iota
	outcomeFound
	outcomeAmbiguous
)

// match is the result of searching a single lookup phase.
type match struct {
	outcome outcome
	url     string
	tag     string
}

func findAsset(r *release.Release, assetName string) match {
	assets := r.FindAssets(assetName)
	switch len(assets) {
	case 0:
		return match{outcome: outcomeNotFound}
	case 1:
		return match{outcome: outcomeFound, url: assets[0].URL, tag: r.TagName}
	default:
		return match{outcome: outcomeAmbiguous, tag: r.TagName}
	}
}

type Resolver struct {
	log      logrus.FieldLogger
	ghClient *github.Client
}

func New(log logrus.FieldLogger, ghClient *github.Client) *Resolver {
	return &Resolver{
		log:      log,
		ghClient: ghClient,
	}
}

func (r *Resolver) apiURL(format string, a ...any) string {
	return r.ghClient.BaseURL.String() + fmt.Sprintf(format, a...)
}

func (r *Resolver) searchTagRelease(ctx context.Context, log logrus.FieldLogger, q *release.Query) (match, error) {
	log.Infof("searching for release by tag name using %s", r.apiURL("repos/%s/%s/releases/tags/%s", q.Owner, q.Repo, url.PathEscape(q.Tag)))
	tagRelease, err := getGitHubReleaseByTag(ctx, r.ghClient, q.Owner, q.Repo, q.Tag)
	if err != nil {
		return match{}, err
	}
	// only a release carrying exactly the wanted tag counts
	if tagRelease == nil || tagRelease.TagName != q.Tag {
		log.Info("... release not found by tag")
		return match{outcome: outcomeNotFound}, nil
	}
	m := findAsset(tagRelease, q.AssetName)
	if m.outcome == outcomeNotFound {
		log.Info("... asset not found in tag release")
	}
	return m, nil
}

func (r *Resolver) searchAllReleases(ctx context.Context, log logrus.FieldLogger, q *release.Query) (match, error) {
	log.Infof("listing all releases using %s", r.apiURL("repos/%s/%s/releases", q.Owner, q.Repo))
	releases, err := getGitHubReleases(ctx, r.ghClient, q.Owner, q.Repo)
	if err != nil {
		return match{}, err
	}
	for _, rel := range releases {
		if rel.TagName != q.Tag {
			continue
		}
		if rel.Draft {
			log.Warnf("release %d matches tag %s but has draft status, ignoring...", rel.ID, rel.TagName)
			continue
		}
		if rel.Prerelease {
			log.Warnf("release %d matches tag %s but has prerelease status, ignoring...", rel.ID, rel.TagName)
			continue
		}
		// an ambiguous release stops the search as well
		if m := findAsset(rel, q.AssetName); m.outcome != outcomeNotFound {
			return m, nil
		}
	}
	return match{outcome: outcomeNotFound}, nil
}

// Resolve returns the browser download URL of the single asset named
// q.AssetName in the release tagged q.Tag. The release fetched by tag is
// searched first; the release listing is only consulted if that yields no
// asset. Resolution fails with an *AmbiguousAssetError or a *NotFoundError,
// any other error is an API or decoding failure.
func (r *Resolver) Resolve(ctx context.Context, q *release.Query) (string, error) {
	log := r.log.WithFields(logrus.Fields{
		"project": q.Project,
		"tag":     q.Tag,
		"asset":   q.AssetName,
	})

	m, err := r.searchTagRelease(ctx, log, q)
	if err != nil {
		return "", err
	}
	if m.outcome == outcomeNotFound {
		m, err = r.searchAllReleases(ctx, log, q)
		if err != nil {
			return "", err
		}
	}

	switch m.outcome {
	case outcomeFound:
		return m.url, nil
	case outcomeAmbiguous:
		return "", &AmbiguousAssetError{Asset: q.AssetName, Tag: m.tag}
	default:
		return "", &NotFoundError{Asset: q.AssetName, Tag: q.Tag, Project: q.Project}
	}
}
