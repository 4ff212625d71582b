// Package migrations embeds the SQL schema migrations applied at startup.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS

// Path is the directory passed to the migration source driver. The files
// are embedded at the package root, so this is ".".
const Path = "."
