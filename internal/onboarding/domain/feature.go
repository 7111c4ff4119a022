package domain

// Feature is one entry of the static feature catalog. IDs are kebab-case
// strings (e.g. "ai-form-analysis") and the catalog order is the stable
// order used for locked-feature listings.
type Feature struct {
	ID      string
	Premium bool
}
