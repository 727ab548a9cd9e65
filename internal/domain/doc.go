// Package domain contains the core entities of the application: the
// persisted Todo item and the transient CatFact returned by the fact
// endpoint. It is independent of any storage or delivery mechanism.
package domain
