package migrations

import "embed"

// FS - SQL миграции схемы kv_store, вшитые в бинарник
//
//go:embed *.sql
var FS embed.FS
