package model

import "html/template"

// Demo represents a single demo application directory discovered during a scan.
type Demo struct {
	Name        string        // display name, defaults to the directory name
	Category    string        // parent directory name of the demo directory
	Path        string        // slash-normalized relative path to the demo directory
	Summary     string        // optional caption from demo.yaml or README frontmatter
	Description template.HTML // optional blurb rendered from the README body
}

// Category groups the demos sharing a parent directory, in scan order.
type Category struct {
	Name  string
	Demos []Demo
}

// Gallery holds everything the page renderer needs for one run.
type Gallery struct {
	SiteTitle  string
	BaseURL    string
	Categories []Category // sorted by category name
}
