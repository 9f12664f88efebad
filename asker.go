package coursecheck

import "context"

// Asker answers free-form questions about the imported catalogs with a
// language model. It is independent of the Resolver.
type Asker interface {
	// Ask answers a natural language question about both catalogs.
	// Returns ENOTFOUND if the catalogs have not been imported.
	Ask(ctx context.Context, question string) (string, error)
}
