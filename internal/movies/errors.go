package movies

import "errors"

// ErrNotFound is returned when no movie has the requested id. Handlers
// translate this into an HTTP 404 response.
var ErrNotFound = errors.New("movie not found")

// ErrConflict is returned when an insert would duplicate an existing title.
// Handlers translate this into an HTTP 409 response.
var ErrConflict = errors.New("title already exists")
