package cart

import "errors"

// ErrUnknownProduct is returned by AddItem for an id the catalogue does not know.
// Callers only ever add products they obtained from the catalogue, so this
// indicates a programming error rather than a user mistake.
var ErrUnknownProduct = errors.New("product not in catalog")
