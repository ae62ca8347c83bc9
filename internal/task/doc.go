// Package task provides the task record model and its SQLite persistence.
//
// A task is the minimal protected resource: a titled record owned by a
// single account. Ownership is recorded at creation from the verified
// identity and never reassigned; the auth package's access policy reads
// it to decide who may view or mutate the record.
package task
