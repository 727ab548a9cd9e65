// Package catfact is the HTTP client for the upstream cat-fact API.
//
// Fetch never returns a Go error. It returns a Result holding either a
// fact or a *FetchError classified by FailureKind, and callers decide
// how to present a failure.
package catfact
