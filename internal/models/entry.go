// Package models defines the domain types for decree.
package models

import "time"

// EntryMetadata is a lightweight description of a markdown file returned by
// directory listings.
type EntryMetadata struct {
	Path      string    `json:"path"`
	Checksum  string    `json:"checksum"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Entry is a managed markdown file together with the naming convention
// recovered from its filename and first heading.
type Entry struct {
	Path       string `json:"path"`
	FilePrefix string `json:"file_prefix,omitempty"`
	FileSlug   string `json:"file_slug"`
	Title      string `json:"title"`
	HasHeading bool   `json:"has_heading"`
	HeadPrefix string `json:"heading_prefix,omitempty"`
	InSync     bool   `json:"in_sync"`
}
