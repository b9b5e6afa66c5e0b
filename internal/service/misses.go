package service

import "sort"

// MissTable counts incorrect answers per card ID. An absent entry means no
// misses. It lives in memory for the lifetime of the process only.
type MissTable map[int]int

// Record adds one miss for the card
func (m MissTable) Record(cardID int) {
	m[cardID]++
}

// Count returns the misses recorded for the card
func (m MissTable) Count(cardID int) int {
	return m[cardID]
}

// Has reports whether the card has been missed at least once
func (m MissTable) Has(cardID int) bool {
	return m[cardID] > 0
}

// Forget drops the entry for one card
func (m MissTable) Forget(cardID int) {
	delete(m, cardID)
}

// Reset removes every entry
func (m MissTable) Reset() {
	clear(m)
}

// Total returns the sum of all misses
func (m MissTable) Total() int {
	total := 0
	for _, n := range m {
		total += n
	}
	return total
}

// IDs returns the missed card IDs in ascending order
func (m MissTable) IDs() []int {
	ids := make([]int, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
