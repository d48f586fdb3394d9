// Package service orchestrates record lifecycles over the store: id
// assignment, history appends, the cascade rules, and the assistant
// round-trips with their freshly rebuilt grounding context.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/sergiogarciaj/bartulos/internal/assistant"
	"github.com/sergiogarciaj/bartulos/internal/domain"
	"github.com/sergiogarciaj/bartulos/internal/id"
	"github.com/sergiogarciaj/bartulos/internal/imaging"
	"github.com/sergiogarciaj/bartulos/internal/inventory"
)

var (
	ErrNameRequired     = errors.New("name is required")
	ErrBorrowerRequired = errors.New("borrower name is required")
	ErrNotFound         = errors.New("record not found")
)

// inventoryRepository is the subset of store.Store that InventoryService
// requires.
type inventoryRepository interface {
	Locations(ctx context.Context) ([]domain.Location, error)
	SaveLocation(ctx context.Context, loc domain.Location) error
	DeleteLocation(ctx context.Context, id string) error
	Boxes(ctx context.Context) ([]domain.Box, error)
	SaveBox(ctx context.Context, box domain.Box) error
	DeleteBox(ctx context.Context, id string) error
	Items(ctx context.Context) ([]domain.Item, error)
	SaveItem(ctx context.Context, item domain.Item) error
	DeleteItem(ctx context.Context, id string) error
	Seed(ctx context.Context) (bool, error)
}

// assistantGateway is the fallback-only surface of assistant.Gateway.
type assistantGateway interface {
	ExtractMetadata(ctx context.Context, imageData string) *assistant.Metadata
	ResolvePlace(ctx context.Context, query string) *assistant.Place
	AnswerQuestion(ctx context.Context, message string, turns []assistant.Turn, groundingContext string) string
}

type InventoryService struct {
	store   inventoryRepository
	gateway assistantGateway
	logger  *slog.Logger
}

func NewInventoryService(store inventoryRepository, gateway assistantGateway, logger *slog.Logger) *InventoryService {
	return &InventoryService{store: store, gateway: gateway, logger: logger}
}

// Bootstrap runs the one-time demo seed check. Safe to call on every
// startup; it only populates data while the Boxes collection is empty.
func (s *InventoryService) Bootstrap(ctx context.Context) error {
	seeded, err := s.store.Seed(ctx)
	if err != nil {
		return fmt.Errorf("failed to seed demo data: %w", err)
	}
	if seeded {
		s.logger.Info("seeded demonstration dataset")
	}
	return nil
}

// --- Locations ---

func (s *InventoryService) ListLocations(ctx context.Context) ([]domain.Location, error) {
	return s.store.Locations(ctx)
}

func (s *InventoryService) SaveLocation(ctx context.Context, loc domain.Location) (*domain.Location, error) {
	if strings.TrimSpace(loc.Name) == "" {
		return nil, ErrNameRequired
	}
	if loc.ID == "" {
		loc.ID = id.New()
	}
	if err := s.store.SaveLocation(ctx, loc); err != nil {
		return nil, err
	}
	return &loc, nil
}

func (s *InventoryService) DeleteLocation(ctx context.Context, locID string) error {
	return s.store.DeleteLocation(ctx, locID)
}

// --- Boxes ---

// ListBoxes filters by location; an empty or "ALL" selector returns every
// box.
func (s *InventoryService) ListBoxes(ctx context.Context, locationID string) ([]domain.Box, error) {
	boxes, err := s.store.Boxes(ctx)
	if err != nil {
		return nil, err
	}
	if locationID == "" {
		locationID = inventory.AllLocations
	}
	return inventory.BoxesForLocation(boxes, locationID), nil
}

func (s *InventoryService) GetBox(ctx context.Context, boxID string) (*domain.Box, error) {
	boxes, err := s.store.Boxes(ctx)
	if err != nil {
		return nil, err
	}
	for i := range boxes {
		if boxes[i].ID == boxID {
			return &boxes[i], nil
		}
	}
	return nil, ErrNotFound
}

// SaveBox upserts a whole box record. A record without an id is treated as
// new: it gets a generated id, a creation timestamp, and a CREATE history
// entry. Saving an existing id appends an EDIT entry.
func (s *InventoryService) SaveBox(ctx context.Context, box domain.Box) (*domain.Box, error) {
	if strings.TrimSpace(box.Name) == "" {
		return nil, ErrNameRequired
	}

	now := time.Now().UnixMilli()
	if box.ID == "" {
		box.ID = id.New()
		box.CreatedAt = now
		box.History = []domain.HistoryEntry{{Date: now, Type: domain.HistoryCreate, Details: "Caja registrada en sistema"}}
	} else {
		box.History = append(box.History, domain.HistoryEntry{Date: now, Type: domain.HistoryEdit, Details: "Datos de la caja actualizados"})
	}

	if err := s.store.SaveBox(ctx, box); err != nil {
		return nil, err
	}
	return &box, nil
}

// MoveBox reassigns the box to a location and appends a MOVE entry. The
// legacy free-text location is updated alongside the reference so orphan
// rendering stays meaningful if the location is later deleted.
func (s *InventoryService) MoveBox(ctx context.Context, boxID, locationID string) (*domain.Box, error) {
	box, err := s.GetBox(ctx, boxID)
	if err != nil {
		return nil, err
	}

	destName := locationID
	locations, err := s.store.Locations(ctx)
	if err != nil {
		return nil, err
	}
	for _, loc := range locations {
		if loc.ID == locationID {
			destName = loc.Name
			break
		}
	}

	box.LocationID = locationID
	box.Location = destName
	box.History = append(box.History, domain.HistoryEntry{
		Date:    time.Now().UnixMilli(),
		Type:    domain.HistoryMove,
		Details: fmt.Sprintf("Caja trasladada a %s", destName),
	})

	if err := s.store.SaveBox(ctx, *box); err != nil {
		return nil, err
	}
	return box, nil
}

func (s *InventoryService) DeleteBox(ctx context.Context, boxID string) error {
	return s.store.DeleteBox(ctx, boxID)
}

// --- Items ---

// ListItems returns all items, or only the items of one box when boxID is
// non-empty.
func (s *InventoryService) ListItems(ctx context.Context, boxID string) ([]domain.Item, error) {
	items, err := s.store.Items(ctx)
	if err != nil {
		return nil, err
	}
	if boxID == "" {
		return items, nil
	}
	return inventory.ItemsForBox(items, boxID), nil
}

func (s *InventoryService) GetItem(ctx context.Context, itemID string) (*domain.Item, error) {
	items, err := s.store.Items(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == itemID {
			return &items[i], nil
		}
	}
	return nil, ErrNotFound
}

func (s *InventoryService) SaveItem(ctx context.Context, item domain.Item) (*domain.Item, error) {
	if strings.TrimSpace(item.Name) == "" {
		return nil, ErrNameRequired
	}

	now := time.Now().UnixMilli()
	if item.ID == "" {
		item.ID = id.New()
		item.CreatedAt = now
		item.History = []domain.HistoryEntry{{Date: now, Type: domain.HistoryCreate, Details: "Registrado en sistema"}}
	} else {
		item.History = append(item.History, domain.HistoryEntry{Date: now, Type: domain.HistoryEdit, Details: "Detalles del objeto actualizados"})
	}
	if item.Tags == nil {
		item.Tags = []string{}
	}

	if err := s.store.SaveItem(ctx, item); err != nil {
		return nil, err
	}
	return &item, nil
}

// MoveItem moves the item into another box and appends a MOVE entry.
func (s *InventoryService) MoveItem(ctx context.Context, itemID, boxID string) (*domain.Item, error) {
	item, err := s.GetItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	box, err := s.GetBox(ctx, boxID)
	if err != nil {
		return nil, err
	}

	item.BoxID = box.ID
	item.History = append(item.History, domain.HistoryEntry{
		Date:    time.Now().UnixMilli(),
		Type:    domain.HistoryMove,
		Details: fmt.Sprintf("Movido a caja %s (%s)", box.Name, box.Code),
	})

	if err := s.store.SaveItem(ctx, *item); err != nil {
		return nil, err
	}
	return item, nil
}

// LoanItem fills the single current-loan slot and appends a LOAN entry.
// Loan history is kept in the history sequence, not in the slot.
func (s *InventoryService) LoanItem(ctx context.Context, itemID, borrowerName string, expectedReturnDate int64) (*domain.Item, error) {
	if strings.TrimSpace(borrowerName) == "" {
		return nil, ErrBorrowerRequired
	}
	item, err := s.GetItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UnixMilli()
	item.Loan = domain.Loan{
		IsLoaned:           true,
		BorrowerName:       borrowerName,
		LoanDate:           now,
		ExpectedReturnDate: expectedReturnDate,
	}
	item.History = append(item.History, domain.HistoryEntry{
		Date:    now,
		Type:    domain.HistoryLoan,
		Details: fmt.Sprintf("Prestado a %s", borrowerName),
	})

	if err := s.store.SaveItem(ctx, *item); err != nil {
		return nil, err
	}
	return item, nil
}

// ReturnItem clears the loan slot and appends a RETURN entry.
func (s *InventoryService) ReturnItem(ctx context.Context, itemID string) (*domain.Item, error) {
	item, err := s.GetItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	borrower := item.Loan.BorrowerName
	item.Loan = domain.Loan{IsLoaned: false}
	details := "Objeto devuelto"
	if borrower != "" {
		details = fmt.Sprintf("Devuelto por %s", borrower)
	}
	item.History = append(item.History, domain.HistoryEntry{
		Date:    time.Now().UnixMilli(),
		Type:    domain.HistoryReturn,
		Details: details,
	})

	if err := s.store.SaveItem(ctx, *item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *InventoryService) DeleteItem(ctx context.Context, itemID string) error {
	return s.store.DeleteItem(ctx, itemID)
}

// --- Photos & assistant ---

// NormalizePhoto converts an uploaded image into the embedded data string
// stored on records. A decode failure is terminal for the upload; nothing
// is persisted.
func (s *InventoryService) NormalizePhoto(fileBytes []byte) (string, error) {
	return imaging.Normalize(fileBytes)
}

// AnalyzeItemPhoto normalizes the upload and asks the assistant for
// structured metadata. The metadata side never fails; the gateway
// substitutes its fallback record on any provider error.
func (s *InventoryService) AnalyzeItemPhoto(ctx context.Context, fileBytes []byte) (string, *assistant.Metadata, error) {
	photo, err := imaging.Normalize(fileBytes)
	if err != nil {
		return "", nil, fmt.Errorf("failed to normalize image: %w", err)
	}
	return photo, s.gateway.ExtractMetadata(ctx, photo), nil
}

func (s *InventoryService) ResolvePlace(ctx context.Context, query string) *assistant.Place {
	return s.gateway.ResolvePlace(ctx, query)
}

// Chat answers a user message grounded in a snapshot of the full
// inventory. The grounding context is rebuilt from scratch on every call.
func (s *InventoryService) Chat(ctx context.Context, message string, turns []assistant.Turn) (string, error) {
	locations, err := s.store.Locations(ctx)
	if err != nil {
		return "", err
	}
	boxes, err := s.store.Boxes(ctx)
	if err != nil {
		return "", err
	}
	items, err := s.store.Items(ctx)
	if err != nil {
		return "", err
	}

	groundingContext := inventory.BuildGroundingContext(locations, boxes, items)
	return s.gateway.AnswerQuestion(ctx, message, turns, groundingContext), nil
}
