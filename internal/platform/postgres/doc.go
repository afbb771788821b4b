// Package postgres provides PostgreSQL-specific implementations for the data
// storage interfaces defined in the internal/store package.
//
// Collections are not stored in join tables. A post or comment joins a
// collection when its owner key (posts.user_id, comments.user_id,
// comments.post_id) is set, and collections are read back in ID order.
// The schema itself lives in the embedded goose migrations, see Migrate.
package postgres
