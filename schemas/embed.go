// Package schemas embeds the SQL migrations of the settings database.
package schemas

import "embed"

// Migrations holds migrations/*.sql, applied in file name order.
//
//go:embed migrations/*.sql
var Migrations embed.FS
