package store

import (
	"context"
	"slices"

	"github.com/sergiogarciaj/bartulos/internal/domain"
)

func (s *Store) Locations(ctx context.Context) ([]domain.Location, error) {
	var locations []domain.Location
	if err := s.readCollection(ctx, locationsKey, &locations); err != nil {
		return nil, err
	}
	return locations, nil
}

func (s *Store) SaveLocation(ctx context.Context, loc domain.Location) error {
	locations, err := s.Locations(ctx)
	if err != nil {
		return err
	}
	locations = upsert(locations, loc, func(l domain.Location) string { return l.ID })
	return s.writeCollection(ctx, locationsKey, locations)
}

// DeleteLocation removes the location without cascading. Boxes referencing
// the deleted id become orphans and render through their legacy free-text
// location.
func (s *Store) DeleteLocation(ctx context.Context, id string) error {
	locations, err := s.Locations(ctx)
	if err != nil {
		return err
	}
	locations = slices.DeleteFunc(locations, func(l domain.Location) bool { return l.ID == id })
	return s.writeCollection(ctx, locationsKey, locations)
}
