package store

import (
	"context"
	"time"

	"github.com/sergiogarciaj/bartulos/internal/domain"
)

// Seed populates all three collections with a fixed demonstration dataset
// on first ever launch, detected by an empty Boxes collection. It reports
// whether seeding happened and is idempotent: once any box exists it never
// runs again.
func (s *Store) Seed(ctx context.Context) (bool, error) {
	boxes, err := s.Boxes(ctx)
	if err != nil {
		return false, err
	}
	if len(boxes) > 0 {
		return false, nil
	}

	now := time.Now().UnixMilli()
	const day = 24 * 60 * 60 * 1000

	locations := []domain.Location{
		{ID: "loc_basement", Name: "Sótano", Description: "Zona de almacenamiento principal bajo la casa."},
		{ID: "loc_office", Name: "Oficina", Description: "Armarios y estanterías del despacho."},
		{ID: "loc_garage", Name: "Garage", Description: "Zona de trabajo y banco de herramientas."},
	}

	seedBoxes := []domain.Box{
		{
			ID:          "box_alpha",
			LocationID:  "loc_basement",
			Code:        "SEC-A01",
			Name:        "Hardware Legacy",
			Location:    "Sótano",
			Description: "Componentes antiguos de PC, cables propietarios y adaptadores.",
			CreatedAt:   now - day*30,
			History: []domain.HistoryEntry{
				{Date: now - day*30, Type: domain.HistoryCreate, Details: "Caja registrada"},
				{Date: now - day*5, Type: domain.HistoryMove, Details: "Traslado desde Oficina a Sótano"},
			},
		},
		{
			ID:          "box_beta",
			LocationID:  "loc_office",
			Code:        "SEC-B02",
			Name:        "Periféricos VR",
			Location:    "Oficina",
			Description: "Equipamiento de realidad virtual, sensores base y mandos.",
			CreatedAt:   now,
			History: []domain.HistoryEntry{
				{Date: now, Type: domain.HistoryCreate, Details: "Caja registrada"},
			},
		},
		{
			ID:          "box_gamma",
			LocationID:  "loc_garage",
			Code:        "SEC-C03",
			Name:        "Drones & RC",
			Location:    "Garage",
			Description: "Repuestos de drones, hélices y baterías LiPo.",
			CreatedAt:   now,
			History: []domain.HistoryEntry{
				{Date: now, Type: domain.HistoryCreate, Details: "Caja registrada"},
			},
		},
	}

	items := []domain.Item{
		{
			ID:          "item_1",
			BoxID:       "box_alpha",
			Name:        "NVIDIA GTX 1080 Ti",
			Description: "GPU edición fundadores, en caja original. Funcional.",
			Tags:        []string{"gpu", "nvidia", "hardware", "componente"},
			PhotoURLs:   []string{},
			CreatedAt:   now - day*20,
			Dimensions:  "28 x 12 cm",
			Weight:      "1.2 kg",
			Loan:        domain.Loan{IsLoaned: false},
			History: []domain.HistoryEntry{
				{Date: now - day*20, Type: domain.HistoryCreate, Details: "Registrado en sistema"},
			},
		},
		{
			ID:          "item_2",
			BoxID:       "box_alpha",
			Name:        "Teclado Mecánico Custom",
			Description: "Switches Cherry MX Blue, keycaps retro beige.",
			Tags:        []string{"teclado", "input", "retro"},
			PhotoURLs:   []string{},
			CreatedAt:   now,
			Weight:      "0.9 kg",
			Loan:        domain.Loan{IsLoaned: false},
			History: []domain.HistoryEntry{
				{Date: now, Type: domain.HistoryCreate, Details: "Registrado en sistema"},
			},
		},
		{
			ID:          "item_3",
			BoxID:       "box_beta",
			Name:        "Oculus Quest 2",
			Description: "Headset VR 64GB con correa elite y batería extra.",
			Tags:        []string{"vr", "oculus", "gaming", "meta"},
			PhotoURLs:   []string{},
			CreatedAt:   now - day*10,
			Loan: domain.Loan{
				IsLoaned:     true,
				BorrowerName: "Alex Chen",
				LoanDate:     now - day*5,
			},
			History: []domain.HistoryEntry{
				{Date: now - day*10, Type: domain.HistoryCreate, Details: "Registrado en sistema"},
				{Date: now - day*5, Type: domain.HistoryLoan, Details: "Prestado a Alex Chen"},
			},
		},
		{
			ID:          "item_4",
			BoxID:       "box_gamma",
			Name:        "DJI Mavic Air 2",
			Description: "Drone plegable con 3 baterías y filtros ND.",
			Tags:        []string{"drone", "dji", "fotografía", "vuelo"},
			PhotoURLs:   []string{},
			CreatedAt:   now,
			Loan:        domain.Loan{IsLoaned: false},
			History: []domain.HistoryEntry{
				{Date: now, Type: domain.HistoryCreate, Details: "Registrado en sistema"},
			},
		},
		{
			ID:          "item_5",
			BoxID:       "box_gamma",
			Name:        "Estación de Soldadura",
			Description: "Weller digital con puntas de precisión.",
			Tags:        []string{"herramienta", "soldadura", "electrónica"},
			PhotoURLs:   []string{},
			CreatedAt:   now - day*15,
			Loan:        domain.Loan{IsLoaned: false},
			History: []domain.HistoryEntry{
				{Date: now - day*15, Type: domain.HistoryCreate, Details: "Registrado en sistema"},
				{Date: now - day*12, Type: domain.HistoryLoan, Details: "Prestado a Taller Central"},
				{Date: now - day*2, Type: domain.HistoryReturn, Details: "Devuelto por Taller Central"},
			},
		},
	}

	if err := s.writeCollection(ctx, locationsKey, locations); err != nil {
		return false, err
	}
	if err := s.writeCollection(ctx, boxesKey, seedBoxes); err != nil {
		return false, err
	}
	if err := s.writeCollection(ctx, itemsKey, items); err != nil {
		return false, err
	}
	return true, nil
}
