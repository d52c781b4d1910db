package parcsystem

import "embed"

// Migrations embarque les fichiers SQL goose livrés avec le binaire.
//
//go:embed migrations/*.sql
var Migrations embed.FS
