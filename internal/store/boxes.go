package store

import (
	"context"
	"slices"

	"github.com/sergiogarciaj/bartulos/internal/domain"
)

// Boxes returns every box in collection order. Records written before the
// history field existed are backfilled on read with a synthetic CREATE
// entry so history is never empty.
func (s *Store) Boxes(ctx context.Context) ([]domain.Box, error) {
	var boxes []domain.Box
	if err := s.readCollection(ctx, boxesKey, &boxes); err != nil {
		return nil, err
	}
	for i := range boxes {
		if len(boxes[i].History) == 0 {
			boxes[i].History = []domain.HistoryEntry{{
				Date:    boxes[i].CreatedAt,
				Type:    domain.HistoryCreate,
				Details: "Caja registrada en sistema",
			}}
		}
	}
	return boxes, nil
}

func (s *Store) SaveBox(ctx context.Context, box domain.Box) error {
	boxes, err := s.Boxes(ctx)
	if err != nil {
		return err
	}
	boxes = upsert(boxes, box, func(b domain.Box) string { return b.ID })
	return s.writeCollection(ctx, boxesKey, boxes)
}

// DeleteBox removes the box and cascades to its items: the box exclusively
// owns its items for lifecycle purposes even though they live in a
// separate collection.
func (s *Store) DeleteBox(ctx context.Context, id string) error {
	boxes, err := s.Boxes(ctx)
	if err != nil {
		return err
	}
	boxes = slices.DeleteFunc(boxes, func(b domain.Box) bool { return b.ID == id })
	if err := s.writeCollection(ctx, boxesKey, boxes); err != nil {
		return err
	}

	items, err := s.Items(ctx)
	if err != nil {
		return err
	}
	items = slices.DeleteFunc(items, func(i domain.Item) bool { return i.BoxID == id })
	return s.writeCollection(ctx, itemsKey, items)
}
