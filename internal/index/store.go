// Package index is the build's word-stats store: after a season renders,
// its frequency table and a small summary record are written to a bolt
// database so the stats command can answer queries without re-parsing the
// source tree. The parse/render core never reads it.
package index

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
)

var (
	bSeasons = []byte("seasons") // slug -> SeasonRecord JSON
	bWords   = []byte("words")   // slug -> sub-bucket: word -> count
	bRank    = []byte("rank")    // slug -> sub-bucket: invCount+word -> nil
)

type Store struct {
	db *bolt.DB
}

type OpenOptions struct {
	Path string // e.g. ".gazette/index.db"
}

func Open(opt OpenOptions) (*Store, error) {
	if opt.Path == "" {
		return nil, errors.New("index: missing path")
	}
	if err := os.MkdirAll(filepath.Dir(opt.Path), 0o755); err != nil {
		return nil, err
	}
	db, err := bolt.Open(opt.Path, 0o600, &bolt.Options{
		Timeout: 1 * time.Second,
	})
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
