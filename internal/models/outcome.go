package models

// DeletionOutcome carries the number of rows a delete removed.
// Affected == 0 means nothing matched.
type DeletionOutcome struct {
	Affected int64 `json:"affected"`
}

// Found reports whether the delete matched a row.
func (d DeletionOutcome) Found() bool {
	return d.Affected > 0
}
