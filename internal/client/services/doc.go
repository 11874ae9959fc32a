// Package services holds the recipebox application services: identity and
// session, favorites/recents/shopping list, preferences, and the search and
// recipe-detail orchestration on top of the catalog.
//
// All state lives in a kv.Store; services read it on demand and write the
// full value back after every mutation. Each service serialises its own
// read-modify-write sequences, so a single instance may be shared between
// goroutines.
package services
