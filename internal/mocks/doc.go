// Package mocks provides centralized mock implementations for testing.
//
// The store mocks share a Memory so that attaching a post or comment through
// one store is visible when listing through another, the same way the
// PostgreSQL stores share tables. Every method has a function field that,
// when set, replaces the in-memory behaviour:
//
//	users, posts, comments, tx := mocks.NewMockStores()
//	posts.CreateFn = func(ctx context.Context, p *domain.Post) error {
//	    return errors.New("disk full")
//	}
//
// MockTransactor restores the Memory snapshot taken before a unit of work
// when that unit returns an error, so rollback behaviour can be asserted
// without a database.
//
// TestifyMockUserService mocks service.UserService with testify/mock for
// HTTP handler tests.
package mocks
