package service

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/sergiogarciaj/bartulos/internal/assistant"
	"github.com/sergiogarciaj/bartulos/internal/domain"
	"github.com/sergiogarciaj/bartulos/internal/store"
)

var testDBCounter atomic.Int64

func newTestService(t *testing.T) *InventoryService {
	t.Helper()

	dsn := fmt.Sprintf("file:servicetest%d?mode=memory&cache=shared", testDBCounter.Add(1))
	d, err := sql.Open("sqlite", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = d.Close() })

	_, err = d.Exec(`
		CREATE TABLE collections (
			key        TEXT PRIMARY KEY,
			data       TEXT NOT NULL,
			updated_at DATETIME NOT NULL DEFAULT (datetime('now'))
		);
	`)
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	st := store.New(d, logger)
	gateway := assistant.NewGateway(assistant.Stub{}, logger)
	return NewInventoryService(st, gateway, logger)
}

func TestSaveBoxAssignsIdentityAndHistory(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	box, err := svc.SaveBox(ctx, domain.Box{Code: "C-001", Name: "Herramientas", Location: "Garage"})
	require.NoError(t, err)

	assert.Len(t, box.ID, 9)
	assert.NotZero(t, box.CreatedAt)
	require.Len(t, box.History, 1)
	assert.Equal(t, domain.HistoryCreate, box.History[0].Type)
}

func TestSaveBoxEditAppendsHistory(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	box, err := svc.SaveBox(ctx, domain.Box{Code: "C-001", Name: "Herramientas"})
	require.NoError(t, err)

	box.Name = "Herramientas eléctricas"
	edited, err := svc.SaveBox(ctx, *box)
	require.NoError(t, err)

	require.Len(t, edited.History, 2)
	assert.Equal(t, domain.HistoryEdit, edited.History[1].Type)

	stored, err := svc.GetBox(ctx, box.ID)
	require.NoError(t, err)
	assert.Equal(t, "Herramientas eléctricas", stored.Name)
}

func TestSaveBoxRequiresName(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.SaveBox(context.Background(), domain.Box{Code: "C-001", Name: "   "})
	assert.ErrorIs(t, err, ErrNameRequired)
}

func TestSaveLocationRequiresName(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.SaveLocation(context.Background(), domain.Location{Description: "sin nombre"})
	assert.ErrorIs(t, err, ErrNameRequired)
}

func TestMoveBox(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	loc, err := svc.SaveLocation(ctx, domain.Location{Name: "Sótano", Description: "Bajo la casa"})
	require.NoError(t, err)
	box, err := svc.SaveBox(ctx, domain.Box{Code: "C-001", Name: "Cables"})
	require.NoError(t, err)

	moved, err := svc.MoveBox(ctx, box.ID, loc.ID)
	require.NoError(t, err)

	assert.Equal(t, loc.ID, moved.LocationID)
	assert.Equal(t, "Sótano", moved.Location)
	last := moved.History[len(moved.History)-1]
	assert.Equal(t, domain.HistoryMove, last.Type)
	assert.Contains(t, last.Details, "Sótano")
}

func TestMoveBoxNotFound(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.MoveBox(context.Background(), "missing", "l1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoanAndReturnItem(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	box, err := svc.SaveBox(ctx, domain.Box{Code: "C-001", Name: "Electrónica"})
	require.NoError(t, err)
	item, err := svc.SaveItem(ctx, domain.Item{BoxID: box.ID, Name: "Osciloscopio"})
	require.NoError(t, err)

	loaned, err := svc.LoanItem(ctx, item.ID, "Marta", 0)
	require.NoError(t, err)
	assert.True(t, loaned.Loan.IsLoaned)
	assert.Equal(t, "Marta", loaned.Loan.BorrowerName)
	assert.NotZero(t, loaned.Loan.LoanDate)
	assert.Equal(t, domain.HistoryLoan, loaned.History[len(loaned.History)-1].Type)

	returned, err := svc.ReturnItem(ctx, item.ID)
	require.NoError(t, err)
	assert.False(t, returned.Loan.IsLoaned)
	assert.Empty(t, returned.Loan.BorrowerName)
	last := returned.History[len(returned.History)-1]
	assert.Equal(t, domain.HistoryReturn, last.Type)
	assert.Contains(t, last.Details, "Marta")

	// CREATE + LOAN + RETURN, in insertion order.
	assert.Len(t, returned.History, 3)
}

func TestLoanItemRequiresBorrower(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	item, err := svc.SaveItem(ctx, domain.Item{BoxID: "b1", Name: "Sierra"})
	require.NoError(t, err)

	_, err = svc.LoanItem(ctx, item.ID, "", 0)
	assert.ErrorIs(t, err, ErrBorrowerRequired)
}

func TestMoveItemBetweenBoxes(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	origin, err := svc.SaveBox(ctx, domain.Box{Code: "C-001", Name: "Origen"})
	require.NoError(t, err)
	dest, err := svc.SaveBox(ctx, domain.Box{Code: "C-002", Name: "Destino"})
	require.NoError(t, err)
	item, err := svc.SaveItem(ctx, domain.Item{BoxID: origin.ID, Name: "Linterna"})
	require.NoError(t, err)

	moved, err := svc.MoveItem(ctx, item.ID, dest.ID)
	require.NoError(t, err)

	assert.Equal(t, dest.ID, moved.BoxID)
	last := moved.History[len(moved.History)-1]
	assert.Equal(t, domain.HistoryMove, last.Type)
	assert.Contains(t, last.Details, "Destino")
}

func TestDeleteBoxCascades(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	box, err := svc.SaveBox(ctx, domain.Box{Code: "C-001", Name: "Efímera"})
	require.NoError(t, err)
	_, err = svc.SaveItem(ctx, domain.Item{BoxID: box.ID, Name: "Contenido"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteBox(ctx, box.ID))

	items, err := svc.ListItems(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestChatUsesStubFallback(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.Bootstrap(ctx))

	answer, err := svc.Chat(ctx, "¿Dónde está el drone?", nil)
	require.NoError(t, err)
	assert.Equal(t, assistant.FallbackAnswer, answer)
}

func TestBootstrapIsIdempotent(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.Bootstrap(ctx))
	require.NoError(t, svc.Bootstrap(ctx))

	boxes, err := svc.ListBoxes(ctx, "")
	require.NoError(t, err)
	assert.Len(t, boxes, 3)
}
