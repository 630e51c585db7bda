package dto

import (
	"github.com/SscSPs/multinav_crm/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateWorkforceEntryRequest defines the data needed to add a workforce position.
type CreateWorkforceEntryRequest struct {
	Partition string          `json:"partition" binding:"required,oneof=north south"`
	FTE       decimal.Decimal `json:"fte" binding:"required"`
	Role      string          `json:"role" binding:"required"`
	Ethnicity string          `json:"ethnicity"`
	Languages []string        `json:"languages"`
}

// UpdateWorkforceEntryRequest defines the workforce fields that may be changed.
type UpdateWorkforceEntryRequest struct {
	Partition *string          `json:"partition" binding:"omitempty,oneof=north south"`
	FTE       *decimal.Decimal `json:"fte"`
	Role      *string          `json:"role"`
	Ethnicity *string          `json:"ethnicity"`
	Languages *[]string        `json:"languages"`
}

// WorkforceResponse is the partitioned workforce snapshot with totals.
type WorkforceResponse struct {
	North   []domain.WorkforceEntry `json:"north"`
	South   []domain.WorkforceEntry `json:"south"`
	Summary domain.WorkforceSummary `json:"summary"`
}

// ToWorkforceResponse pairs a snapshot with its summary. Nil partitions are
// rendered as empty lists.
func ToWorkforceResponse(data domain.WorkforceData, summary domain.WorkforceSummary) WorkforceResponse {
	north, south := data.North, data.South
	if north == nil {
		north = []domain.WorkforceEntry{}
	}
	if south == nil {
		south = []domain.WorkforceEntry{}
	}
	return WorkforceResponse{North: north, South: south, Summary: summary}
}
