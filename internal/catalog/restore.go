package catalog

import (
	"fmt"

	"github.com/evcraddock/rent-finder/internal/property"
)

// Repository is a Journal that can replay what it recorded.
type Repository interface {
	Journal
	List() ([]property.Property, error)
	Saved() (map[string][]int64, error)
}

// Restore builds a store from the seed plus everything repo recorded, and
// keeps journaling to repo.
func Restore(seed []property.Property, repo Repository) (*Store, error) {
	added, err := repo.List()
	if err != nil {
		return nil, fmt.Errorf("restoring listings: %w", err)
	}
	saved, err := repo.Saved()
	if err != nil {
		return nil, fmt.Errorf("restoring saved listings: %w", err)
	}

	props := make([]property.Property, 0, len(seed)+len(added))
	props = append(props, seed...)
	props = append(props, added...)

	opts := []Option{WithJournal(repo)}
	for owner, ids := range saved {
		opts = append(opts, WithSaved(owner, ids))
	}
	return NewStore(props, opts...), nil
}
