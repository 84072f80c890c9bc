// Package migrations embeds the schema migrations for the client's local
// credentials database.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
