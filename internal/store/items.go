package store

import (
	"context"
	"slices"

	"github.com/sergiogarciaj/bartulos/internal/domain"
)

// Items returns every item in collection order, applying forward-compatible
// migration on read: a missing photoUrls gallery is derived from the
// legacy photoUrl field, and a missing history is backfilled with a
// synthetic CREATE entry.
func (s *Store) Items(ctx context.Context) ([]domain.Item, error) {
	var items []domain.Item
	if err := s.readCollection(ctx, itemsKey, &items); err != nil {
		return nil, err
	}
	for i := range items {
		if len(items[i].PhotoURLs) == 0 && items[i].PhotoURL != "" {
			items[i].PhotoURLs = []string{items[i].PhotoURL}
		}
		if len(items[i].History) == 0 {
			items[i].History = []domain.HistoryEntry{{
				Date:    items[i].CreatedAt,
				Type:    domain.HistoryCreate,
				Details: "Item importado/creado",
			}}
		}
	}
	return items, nil
}

// SaveItem upserts the item. The deprecated photoUrl field always mirrors
// photoUrls[0] on save so records stay readable by older consumers.
func (s *Store) SaveItem(ctx context.Context, item domain.Item) error {
	if len(item.PhotoURLs) > 0 {
		item.PhotoURL = item.PhotoURLs[0]
	} else {
		item.PhotoURL = ""
	}

	items, err := s.Items(ctx)
	if err != nil {
		return err
	}
	items = upsert(items, item, func(i domain.Item) string { return i.ID })
	return s.writeCollection(ctx, itemsKey, items)
}

func (s *Store) DeleteItem(ctx context.Context, id string) error {
	items, err := s.Items(ctx)
	if err != nil {
		return err
	}
	items = slices.DeleteFunc(items, func(i domain.Item) bool { return i.ID == id })
	return s.writeCollection(ctx, itemsKey, items)
}
