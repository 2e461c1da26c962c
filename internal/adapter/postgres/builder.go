package postgres

import sq "github.com/Masterminds/squirrel"

// Builder is the squirrel statement builder configured for PostgreSQL
// placeholders. Repositories use it for queries whose shape depends on
// optional filters.
var Builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Row is the subset of pgx.Row and pgx.Rows used by scan helpers.
type Row interface {
	Scan(dest ...any) error
}
