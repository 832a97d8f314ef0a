package organizer

import "errors"

// ErrDocumentNotFound indicates the addressed document does not exist.
// Distinct from store failures: a missing document is a 404, a broken
// store is a 500.
var ErrDocumentNotFound = errors.New("organizer.document_not_found")
