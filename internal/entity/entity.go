// Package entity implements the content tree of a publication: seasons and
// the articles they group. Every node follows the same two-phase lifecycle,
// parse then render, and a parent never reaches into a child beyond that
// contract.
package entity

import (
	"runtime"
	"sync"

	"gazette/internal/render"
)

// ManifestFile is the conventional manifest name inside a season directory.
const ManifestFile = "gazette.toml"

// Entity is the capability every node in the content tree implements.
// Parse resolves on-disk sources into memory and runs exactly once; Render
// is read-only and may run any number of times afterwards.
type Entity interface {
	Parse(source string) error
	Render(ctx render.Context, dest string) error
}

var (
	_ Entity = (*Season)(nil)
	_ Entity = (*Article)(nil)
)

// parseArticles parses every article against dir on a small worker pool.
// Results are addressed by index so the caller's ordering is untouched, and
// the first failure in list order wins regardless of completion order.
func parseArticles(articles []*Article, dir string) error {
	workers := runtime.GOMAXPROCS(0)
	if workers > len(articles) {
		workers = len(articles)
	}
	if workers <= 1 {
		for _, a := range articles {
			if err := a.Parse(dir); err != nil {
				return err
			}
		}
		return nil
	}

	jobs := make(chan int)
	errs := make([]error, len(articles))
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				errs[idx] = articles[idx].Parse(dir)
			}
		}()
	}

	for i := range articles {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
