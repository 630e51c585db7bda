package domain

import "github.com/shopspring/decimal"

// WorkforcePartition is the fixed two-way split of the workforce.
type WorkforcePartition string

const (
	PartitionNorth WorkforcePartition = "north"
	PartitionSouth WorkforcePartition = "south"
)

// IsValid reports whether p is north or south.
func (p WorkforcePartition) IsValid() bool {
	return p == PartitionNorth || p == PartitionSouth
}

// WorkforceEntry is one position in the program workforce.
type WorkforceEntry struct {
	ID        string             `json:"id"`
	Partition WorkforcePartition `json:"partition"`
	FTE       decimal.Decimal    `json:"fte"`
	Role      string             `json:"role"`
	Ethnicity string             `json:"ethnicity"`
	Languages []string           `json:"languages"`
}

// WorkforceData is the partitioned workforce snapshot.
type WorkforceData struct {
	North []WorkforceEntry `json:"north"`
	South []WorkforceEntry `json:"south"`
}

// All returns north entries followed by south entries.
func (w WorkforceData) All() []WorkforceEntry {
	out := make([]WorkforceEntry, 0, len(w.North)+len(w.South))
	out = append(out, w.North...)
	return append(out, w.South...)
}

// PartitionWorkforce splits entries by their partition, preserving order.
// Entries with an unrecognised partition are dropped.
func PartitionWorkforce(entries []WorkforceEntry) WorkforceData {
	var data WorkforceData
	for _, e := range entries {
		switch e.Partition {
		case PartitionNorth:
			data.North = append(data.North, e)
		case PartitionSouth:
			data.South = append(data.South, e)
		}
	}
	return data
}
