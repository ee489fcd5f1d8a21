package release

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidProject = errors.New("project must be in owner/repo format")

// Query identifies the asset to resolve. It is immutable once created.
type Query struct {
	Project   string
	Owner     string
	Repo      string
	Tag       string
	AssetName string
}

func NewQuery(project, tag, assetName string) (*Query, error) {
	owner, repo, found := strings.Cut(project, "/")
	if !found || owner == "" || repo == "" || strings.Contains(repo, "/") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidProject, project)
	}
	if tag == "" {
		return nil, errors.New("tag must not be empty")
	}
	if assetName == "" {
		return nil, errors.New("asset name must not be empty")
	}
	return &Query{
		Project:   project,
		Owner:     owner,
		Repo:      repo,
		Tag:       tag,
		AssetName: assetName,
	}, nil
}

type Release struct {
	ID         int64
	TagName    string
	Draft      bool
	Prerelease bool
	Assets     []*Asset
}

type Asset struct {
	Name string
	URL  string
}

// FindAssets returns every asset named exactly name, in release order.
func (r *Release) FindAssets(name string) []*Asset {
	ret := make([]*Asset, 0, 1)
	for _, a := range r.Assets {
		if a.Name == name {
			ret = append(ret, a)
		}
	}
	return ret
}
