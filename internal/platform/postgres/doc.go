// Package postgres provides PostgreSQL-backed implementations of the store
// interfaces. All access goes through parameterized queries on a pooled
// database/sql connection using the pgx driver; database errors are mapped
// to the sentinel errors defined in the store package before they leave
// this layer.
package postgres
