// Package migrations holds the goose SQL migrations for the social media schema.
package migrations

import "embed"

// FS contains every migration file, rooted at ".".
//
//go:embed *.sql
var FS embed.FS
