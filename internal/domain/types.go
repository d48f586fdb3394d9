package domain

import "sort"

// History entry types. Entries are append-only: every lifecycle mutation on
// a Box or Item adds exactly one entry, and entries are never reordered or
// deleted.
const (
	HistoryCreate = "CREATE"
	HistoryEdit   = "EDIT"
	HistoryMove   = "MOVE"
	HistoryLoan   = "LOAN"
	HistoryReturn = "RETURN"
)

// HistoryEntry is an immutable audit record of one lifecycle event.
// Timestamps are milliseconds since the Unix epoch, matching the persisted
// wire format.
type HistoryEntry struct {
	Date    int64  `json:"date"`
	Type    string `json:"type"`
	Details string `json:"details"`
}

// Location is a named physical zone (a room, a garage) holding zero or
// more Boxes. Deleting a Location does not cascade: Boxes keep a dangling
// locationId and fall back to their legacy free-text location.
type Location struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Address     string `json:"address,omitempty"`
	MapLinkURI  string `json:"mapLinkUri,omitempty"`
	PhotoURL    string `json:"photoUrl,omitempty"`
}

// Box is a physical storage container. LocationID is a soft back-reference
// used for lookup only; Location carries the legacy free-text fallback
// shown when the reference dangles.
type Box struct {
	ID          string         `json:"id"`
	LocationID  string         `json:"locationId,omitempty"`
	Code        string         `json:"code"`
	Name        string         `json:"name"`
	Location    string         `json:"location"`
	Description string         `json:"description"`
	PhotoURL    string         `json:"photoUrl,omitempty"`
	CreatedAt   int64          `json:"createdAt"`
	History     []HistoryEntry `json:"history"`
}

// Loan is the current lending state of an Item: a single slot, not a loan
// history. Past loans live in the Item's history as LOAN/RETURN entries.
type Loan struct {
	IsLoaned           bool   `json:"isLoaned"`
	BorrowerName       string `json:"borrowerName,omitempty"`
	LoanDate           int64  `json:"loanDate,omitempty"`
	ExpectedReturnDate int64  `json:"expectedReturnDate,omitempty"`
}

// Item is an individual possession stored inside a Box. PhotoURLs is the
// authoritative ordered gallery; PhotoURL is retained for backward
// compatibility and mirrors PhotoURLs[0] on save.
type Item struct {
	ID          string         `json:"id"`
	BoxID       string         `json:"boxId"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Tags        []string       `json:"tags"`
	PhotoURL    string         `json:"photoUrl,omitempty"`
	PhotoURLs   []string       `json:"photoUrls"`
	CreatedAt   int64          `json:"createdAt"`
	Dimensions  string         `json:"dimensions,omitempty"`
	Weight      string         `json:"weight,omitempty"`
	Loan        Loan           `json:"loan"`
	History     []HistoryEntry `json:"history"`
}

// HistoryDescending returns a copy of entries sorted most-recent-first.
// Storage order is insertion order (ascending); display order is newest
// first.
func HistoryDescending(entries []HistoryEntry) []HistoryEntry {
	out := make([]HistoryEntry, len(entries))
	copy(out, entries)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out
}
