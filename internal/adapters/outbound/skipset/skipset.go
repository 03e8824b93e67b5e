// Package skipset loads the prior-OK list written by a previous run.
package skipset

import (
	"bufio"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/tplcheck/tplcheck/internal/domain"
)

// okListGlob matches the flat OK lists the report writer produces. The
// timestamp layout makes lexicographic order chronological.
const okListGlob = "ok_files_*.txt"

// Loader implements domain.SkipSetLoader. Every failure mode is soft: a
// missing directory, no prior list, or an unreadable list all degrade to an
// empty set with a warning, never an error.
type Loader struct {
	log *zap.SugaredLogger
}

func New(log *zap.SugaredLogger) *Loader {
	return &Loader{log: log}
}

// Load returns the paths from the newest ok_files_*.txt in logDir,
// normalized for exact-match membership tests.
func (l *Loader) Load(logDir string) domain.SkipSet {
	set := domain.NewSkipSet()

	if _, err := os.Stat(logDir); err != nil {
		l.log.Warnf("log directory %s does not exist, no prior OK list to load", logDir)
		return set
	}

	matches, err := filepath.Glob(filepath.Join(logDir, okListGlob))
	if err != nil || len(matches) == 0 {
		l.log.Warnf("no prior OK list (%s) found in %s, processing all matched files", okListGlob, logDir)
		return set
	}
	sort.Strings(matches)
	latest := matches[len(matches)-1]

	f, err := os.Open(latest)
	if err != nil {
		l.log.Warnf("cannot read prior OK list %s: %v, processing all matched files", latest, err)
		return set
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			set.Add(line)
		}
	}
	if err := scanner.Err(); err != nil {
		l.log.Warnf("error while parsing prior OK list %s: %v, processing all matched files", latest, err)
		return domain.NewSkipSet()
	}

	l.log.Infof("loaded %d previously-OK paths from %s", set.Len(), latest)
	return set
}

var _ domain.SkipSetLoader = (*Loader)(nil)
