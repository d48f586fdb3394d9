// Package inventory joins the three collections by their soft references:
// location filtering for the dashboard and the textual grounding context
// for the assistant.
package inventory

import (
	"fmt"
	"strings"

	"github.com/sergiogarciaj/bartulos/internal/domain"
)

// AllLocations is the sentinel location selector that bypasses filtering.
const AllLocations = "ALL"

// BoxesForLocation returns the boxes whose locationId equals locationID,
// preserving collection order. The AllLocations sentinel returns every box.
func BoxesForLocation(boxes []domain.Box, locationID string) []domain.Box {
	if locationID == AllLocations {
		return boxes
	}
	out := make([]domain.Box, 0)
	for _, b := range boxes {
		if b.LocationID == locationID {
			out = append(out, b)
		}
	}
	return out
}

// ItemsForBox returns the items whose boxId equals boxID, preserving
// collection order.
func ItemsForBox(items []domain.Item, boxID string) []domain.Item {
	out := make([]domain.Item, 0)
	for _, i := range items {
		if i.BoxID == boxID {
			out = append(out, i)
		}
	}
	return out
}

// BuildGroundingContext renders the full Location > Box > Item hierarchy
// as the text snapshot handed to the assistant. It is rebuilt from scratch
// on every query; there is no caching or invalidation at this data scale.
//
// Boxes with no matching location — locationId absent or referencing a
// deleted location — are grouped into one trailing unknown-location
// section keyed by their legacy free-text location, still listing their
// items.
func BuildGroundingContext(locations []domain.Location, boxes []domain.Box, items []domain.Item) string {
	var sb strings.Builder
	sb.WriteString("INVENTARIO ACTUAL:\n")

	known := make(map[string]bool, len(locations))
	for _, loc := range locations {
		known[loc.ID] = true
	}

	for _, loc := range locations {
		fmt.Fprintf(&sb, "\n[LUGAR: %s] (%s)\n", loc.Name, loc.Description)
		locBoxes := BoxesForLocation(boxes, loc.ID)
		if len(locBoxes) == 0 {
			sb.WriteString("  (Sin cajas)\n")
		}
		for _, box := range locBoxes {
			writeBox(&sb, box, items)
		}
	}

	var orphans []domain.Box
	for _, box := range boxes {
		if box.LocationID == "" || !known[box.LocationID] {
			orphans = append(orphans, box)
		}
	}
	if len(orphans) > 0 {
		sb.WriteString("\n[UBICACIÓN DESCONOCIDA / ANTIGUA]\n")
		for _, box := range orphans {
			fmt.Fprintf(&sb, "  > [CAJA: %s] (Ubicación texto: %s)\n", box.Name, box.Location)
			for _, item := range ItemsForBox(items, box.ID) {
				fmt.Fprintf(&sb, "    - ITEM: %s\n", item.Name)
			}
		}
	}

	return sb.String()
}

func writeBox(sb *strings.Builder, box domain.Box, items []domain.Item) {
	fmt.Fprintf(sb, "  > [CAJA: %s] (Código: %s, Desc: %s)\n", box.Name, box.Code, box.Description)
	boxItems := ItemsForBox(items, box.ID)
	if len(boxItems) == 0 {
		sb.WriteString("    - (Vacía)\n")
	}
	for _, item := range boxItems {
		loanStatus := ""
		if item.Loan.IsLoaned {
			loanStatus = fmt.Sprintf("(PRESTADO a %s)", item.Loan.BorrowerName)
		}
		fmt.Fprintf(sb, "    - ITEM: %s | Tags: %s | Desc: %s %s\n",
			item.Name, strings.Join(item.Tags, ", "), item.Description, loanStatus)
	}
}
