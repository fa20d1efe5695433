package wikidata

import "errors"

// Sentinel kinds for query failures. The scraper treats all of them as
// empty result sets; they exist so logs and metrics can tell transport
// problems from endpoint problems.
var (
	ErrTransport = errors.New("sparql transport error")
	ErrBadStatus = errors.New("sparql endpoint returned non-2xx status")
	ErrDecode    = errors.New("sparql response decode failed")
)
