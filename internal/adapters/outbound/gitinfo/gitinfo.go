// Package gitinfo stamps template provenance into the report.
package gitinfo

import (
	"path/filepath"

	git "github.com/go-git/go-git/v5"

	"github.com/tplcheck/tplcheck/internal/domain"
)

// TemplateInfo implements domain.TemplateInfo using go-git. Templates are
// usually developed in a git checkout; recording the commit ties a
// validation run to the exact template revision it exercised.
type TemplateInfo struct{}

func New() *TemplateInfo {
	return &TemplateInfo{}
}

// CommitHash returns the short HEAD hash of the repository containing
// templatePath. A template outside any work tree is not an error.
func (g *TemplateInfo) CommitHash(templatePath string) (string, bool) {
	repo, err := git.PlainOpenWithOptions(filepath.Dir(templatePath), &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return "", false
	}
	head, err := repo.Head()
	if err != nil {
		return "", false
	}
	return head.Hash().String()[:12], true
}

var _ domain.TemplateInfo = (*TemplateInfo)(nil)
