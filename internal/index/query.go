package index

import (
	"encoding/json"
	"errors"
	"strings"

	bolt "go.etcd.io/bbolt"

	"gazette/internal/entity"
)

var ErrNotFound = errors.New("not found")

// SeasonInfo returns the stored summary record for slug.
func (s *Store) SeasonInfo(slug string) (SeasonRecord, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return SeasonRecord{}, ErrNotFound
	}
	var rec SeasonRecord
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bSeasons)
		if b == nil {
			return ErrNotFound
		}
		v := b.Get([]byte(slug))
		if v == nil {
			return ErrNotFound
		}
		return json.Unmarshal(v, &rec)
	})
	return rec, err
}

// Seasons lists every recorded season in slug order.
func (s *Store) Seasons() ([]SeasonRecord, error) {
	var out []SeasonRecord
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bSeasons)
		if b == nil {
			return nil
		}
		return b.ForEach(func(_, v []byte) error {
			var rec SeasonRecord
			if err := json.Unmarshal(v, &rec); err != nil {
				return err
			}
			out = append(out, rec)
			return nil
		})
	})
	return out, err
}

// WordCount looks up the stored count for one word in one season; missing
// words count zero.
func (s *Store) WordCount(slug, word string) (int, error) {
	var count int
	err := s.db.View(func(tx *bolt.Tx) error {
		parent := tx.Bucket(bWords)
		if parent == nil {
			return ErrNotFound
		}
		b := parent.Bucket([]byte(slug))
		if b == nil {
			return ErrNotFound
		}
		count = getCount(b.Get([]byte(word)))
		return nil
	})
	return count, err
}

// TopWords returns up to n words for the season, most frequent first, ties
// broken by word order. The rank bucket's key encoding makes this a single
// forward cursor scan.
func (s *Store) TopWords(slug string, n int) ([]entity.WordCount, error) {
	if n <= 0 {
		n = 10
	}
	var out []entity.WordCount
	err := s.db.View(func(tx *bolt.Tx) error {
		parent := tx.Bucket(bRank)
		if parent == nil {
			return ErrNotFound
		}
		b := parent.Bucket([]byte(slug))
		if b == nil {
			return ErrNotFound
		}

		cur := b.Cursor()
		for k, _ := cur.First(); k != nil && len(out) < n; k, _ = cur.Next() {
			word, count := countWordFromKey(k)
			if word == "" {
				continue
			}
			out = append(out, entity.WordCount{Word: word, Count: count})
		}
		return nil
	})
	return out, err
}
