// Package service provides the application-level operations over users,
// their posts and their comments.
//
// The service owns the rules that span more than one store: email
// uniqueness, parent existence before a child is created, and attaching a
// new comment to both its author and its post. Every sequence that writes
// runs inside a single store.Transactor unit of work.
package service
