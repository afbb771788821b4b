// Package store defines interfaces for data persistence operations.
// These interfaces abstract the underlying data storage mechanism from
// the application's core logic, allowing the orchestration rules to remain
// independent of specific database technologies or persistence details.
//
// Each store addresses one entity type by its store-assigned int64 identity.
// Ownership collections (a user's posts, a user's comments, a post's
// comments) are maintained through the Attach operations and read back in
// creation order.
package store
