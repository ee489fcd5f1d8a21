package resolver

import "fmt"

type AmbiguousAssetError struct {
	Asset string
	Tag   string
}

func (e *AmbiguousAssetError) Error() string {
	return fmt.Sprintf("multiple assets found named %s for tag %s, unable to determine correct URL", e.Asset, e.Tag)
}

type NotFoundError struct {
	Asset   string
	Tag     string
	Project string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("asset %s for tag %s could not be found for project %s", e.Asset, e.Tag, e.Project)
}
