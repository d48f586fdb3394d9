package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHistoryDescending(t *testing.T) {
	entries := []HistoryEntry{
		{Date: 100, Type: HistoryCreate, Details: "registrada"},
		{Date: 300, Type: HistoryLoan, Details: "prestada"},
		{Date: 200, Type: HistoryEdit, Details: "editada"},
	}

	sorted := HistoryDescending(entries)

	assert.Equal(t, []int64{300, 200, 100}, []int64{sorted[0].Date, sorted[1].Date, sorted[2].Date})

	// Storage order is untouched.
	assert.Equal(t, int64(100), entries[0].Date)
	assert.Equal(t, int64(300), entries[1].Date)
}

func TestHistoryDescendingStable(t *testing.T) {
	entries := []HistoryEntry{
		{Date: 100, Type: HistoryLoan, Details: "first"},
		{Date: 100, Type: HistoryReturn, Details: "second"},
	}

	sorted := HistoryDescending(entries)

	// Equal timestamps keep insertion order.
	assert.Equal(t, "first", sorted[0].Details)
	assert.Equal(t, "second", sorted[1].Details)
}
