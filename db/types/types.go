package types

// Migration is a single schema change. SQL holds both sections, delimited by
// "-- +migrate Up" and "-- +migrate Down" annotations.
type Migration struct {
	ID  string
	SQL string
}
