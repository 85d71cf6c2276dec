package index

import (
	"encoding/json"
	"errors"
	"time"

	bolt "go.etcd.io/bbolt"

	"gazette/internal/entity"
)

// SeasonRecord is the stored summary of one recorded season.
type SeasonRecord struct {
	Slug     string    `json:"slug"`
	Number   uint32    `json:"number"`
	Title    string    `json:"title"`
	Articles int       `json:"articles"`
	Words    int       `json:"words"`
	Built    time.Time `json:"built"`
}

// RecordSeason replaces everything stored for the season's slug with the
// current parse results, in one transaction.
func (s *Store) RecordSeason(season *entity.Season) error {
	if season.Slug == "" {
		return errors.New("index: season has no slug")
	}

	rec := SeasonRecord{
		Slug:     season.Slug,
		Number:   season.Number,
		Title:    season.Title,
		Articles: len(season.Articles),
		Words:    len(season.WordFrequency),
		Built:    time.Now(),
	}
	freqs := season.WordFrequencies()

	return s.db.Update(func(tx *bolt.Tx) error {
		seasonsB, err := tx.CreateBucketIfNotExists(bSeasons)
		if err != nil {
			return err
		}
		wordsB, err := tx.CreateBucketIfNotExists(bWords)
		if err != nil {
			return err
		}
		rankB, err := tx.CreateBucketIfNotExists(bRank)
		if err != nil {
			return err
		}

		raw, err := json.Marshal(rec)
		if err != nil {
			return err
		}
		if err := seasonsB.Put([]byte(rec.Slug), raw); err != nil {
			return err
		}

		slug := []byte(rec.Slug)
		_ = wordsB.DeleteBucket(slug)
		_ = rankB.DeleteBucket(slug)

		wb, err := wordsB.CreateBucket(slug)
		if err != nil {
			return err
		}
		rb, err := rankB.CreateBucket(slug)
		if err != nil {
			return err
		}

		for _, wc := range freqs {
			if err := wb.Put([]byte(wc.Word), putCount(wc.Count)); err != nil {
				return err
			}
			if err := rb.Put(makeCountWordKey(wc.Count, wc.Word), nil); err != nil {
				return err
			}
		}
		return nil
	})
}
