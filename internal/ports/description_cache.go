package ports

import "context"

// Port: a boundary for caching carrier service descriptions (WSDL
// documents) across process restarts. The carrier client consults it
// before fetching a description over the network; the core never touches
// it.
type DescriptionCache interface {
	// Retrieve a cached description by its URL. The second return value
	// reports a cache hit.
	Get(ctx context.Context, url string) (string, bool, error)

	// Store a fetched description under its URL, replacing any previous
	// copy.
	Put(ctx context.Context, url string, document string) error
}
