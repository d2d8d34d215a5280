package main

import (
	"fmt"

	"github.com/mwalkowski/laradoc"
)

// Run executes the discover command.
func (c *DiscoverCmd) Run(deps *Dependencies) error {
	var urls []string
	var err error

	if c.Sitemap {
		urls, err = deps.Sitemap.Discover(deps.Ctx, c.Base)
	} else {
		urls, err = deps.Sidebar.Discover(deps.Ctx, c.Base, "/docs/")
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", laradoc.ErrorMessage(err))
		return err
	}

	if len(urls) == 0 {
		fmt.Fprintln(deps.Stderr, "no documentation URLs found")
		return nil
	}

	for _, u := range urls {
		fmt.Fprintln(deps.Stdout, u)
	}
	return nil
}
