package main

import (
	"fmt"
	"time"

	"github.com/mwalkowski/laradoc"
	"github.com/mwalkowski/laradoc/crawl"
	"github.com/mwalkowski/laradoc/rag"
)

// Run executes the index command.
func (c *IndexCmd) Run(deps *Dependencies) error {
	var pages []*laradoc.Page
	var err error
	if c.FromCache {
		pages, err = c.cachedPages(deps)
	} else {
		pages, err = c.harvestPages(deps)
	}
	if err != nil {
		return err
	}

	indexer := rag.NewIndexer(deps.Embedder, deps.Index, deps.Pages)
	chunks, err := indexer.Build(deps.Ctx, pages)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", laradoc.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Indexed %d chunks from %d pages.\n", len(chunks), len(pages))
	return nil
}

// harvestPages fetches the URL plan, reporting per-page progress.
func (c *IndexCmd) harvestPages(deps *Dependencies) ([]*laradoc.Page, error) {
	urls := c.URL
	if len(urls) == 0 {
		urls = crawl.DefaultURLs()
	}

	fmt.Fprintf(deps.Stdout, "Fetching %d pages...\n", len(urls))

	harvester := &crawl.Harvester{
		Fetcher: deps.Fetcher,
		Delay:   time.Duration(c.Delay) * time.Second,
	}

	pages, err := harvester.Harvest(deps.Ctx, urls, func(p laradoc.FetchProgress) {
		switch {
		case p.Err != nil:
			fmt.Fprintf(deps.Stderr, "[%d/%d] %s: %s\n", p.Completed, p.Total, p.URL, laradoc.ErrorMessage(p.Err))
		case p.Retried:
			fmt.Fprintf(deps.Stderr, "[%d/%d] %s (after retry)\n", p.Completed, p.Total, p.URL)
		default:
			fmt.Fprintf(deps.Stderr, "[%d/%d] %s\n", p.Completed, p.Total, p.URL)
		}
	})
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(deps.Stdout, "Fetched %d pages, building index...\n", len(pages))
	return pages, nil
}

// cachedPages loads the pages stored by a previous index run.
func (c *IndexCmd) cachedPages(deps *Dependencies) ([]*laradoc.Page, error) {
	pages, err := deps.Pages.FindPages(deps.Ctx)
	if err != nil {
		return nil, err
	}
	if len(pages) == 0 {
		err := laradoc.Errorf(laradoc.ENOTFOUND, "no cached pages, run index without --from-cache first")
		fmt.Fprintf(deps.Stderr, "error: %s\n", laradoc.ErrorMessage(err))
		return nil, err
	}

	fmt.Fprintf(deps.Stdout, "Rebuilding index from %d cached pages...\n", len(pages))
	return pages, nil
}
