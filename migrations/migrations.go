// Package migrations embeds the goose SQL migrations so the binary can
// apply them without a checkout of the repository.
package migrations

import "embed"

//go:embed goose_sql/*.sql
var FS embed.FS

// Dir is the path of the SQL files inside FS.
const Dir = "goose_sql"
