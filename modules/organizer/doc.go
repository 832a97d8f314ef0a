// Package organizer exposes the game/project organizer collections
// (projects, notes, sketches, storyboards, tasklogs, tags, categories,
// games) behind one uniform document CRUD contract.
//
// Every collection shares the same document shape and the same
// handler; only the collection name differs. All routes sit behind the
// session guard, so each request is authenticated and rotates its
// session token.
package organizer
