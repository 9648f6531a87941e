// Package migrations embeds the versioned schema files (V<n>__name.sql).
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
