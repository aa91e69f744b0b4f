// Package item embeds the item service's goose migrations so both the
// standalone migrate binary and the API boot path (RUN_MIGRATIONS=true) apply
// the same files.
package item

import "embed"

//go:embed *.sql
var FS embed.FS
