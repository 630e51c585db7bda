package analytics_test

import (
	"encoding/json"
	"testing"

	"github.com/SscSPs/multinav_crm/internal/apperrors"
	"github.com/SscSPs/multinav_crm/internal/core/analytics"
	"github.com/SscSPs/multinav_crm/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildInsightRequest_IsCompactAndFreeOfPII(t *testing.T) {
	report, err := analytics.ProgramReport(fixtureClients(), fixtureActivities(), fixtureWorkforce(),
		analytics.Criteria{Start: dayPtr("2024-01-01"), End: dayPtr("2024-12-31")})
	require.NoError(t, err)

	req := analytics.BuildInsightRequest(report)

	assert.Equal(t, 3, req.ClientSummary.Total)
	assert.LessOrEqual(t, len(req.ClientSummary.TopReferralSources), 3)
	assert.Equal(t, "1.93", req.WorkforceSummary.TotalFTE)
	assert.Equal(t, "2024-01-01", req.DateRange.Start)

	payload, err := json.Marshal(req)
	require.NoError(t, err)
	for _, c := range fixtureClients() {
		assert.NotContains(t, string(payload), c.ID)
		assert.NotContains(t, string(payload), `"`+c.FullName+`"`)
	}
}

func TestDecodeInsights_Valid(t *testing.T) {
	payload := []byte(`[
		{"title": "Demand", "insight": "Care coordination leads.", "recommendation": "Add a coordinator."},
		{"title": "Reach", "insight": "Most clients are in the north."}
	]`)

	got, err := analytics.DecodeInsights(payload)

	require.NoError(t, err)
	assert.Equal(t, []domain.Insight{
		{Title: "Demand", Insight: "Care coordination leads.", Recommendation: "Add a coordinator."},
		{Title: "Reach", Insight: "Most clients are in the north."},
	}, got)
}

func TestDecodeInsights_ContractViolations(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{name: "empty", payload: ``},
		{name: "object instead of array", payload: `{"title": "a", "insight": "b"}`},
		{name: "null", payload: `null`},
		{name: "prose", payload: `Here are some insights`},
		{name: "array of strings", payload: `["a", "b"]`},
		{name: "null element", payload: `[null]`},
		{name: "missing insight", payload: `[{"title": "a"}]`},
		{name: "empty title", payload: `[{"title": "", "insight": "b"}]`},
		{name: "numeric title", payload: `[{"title": 1, "insight": "b"}]`},
		{name: "null recommendation", payload: `[{"title": "a", "insight": "b", "recommendation": null}]`},
		{name: "unexpected field", payload: `[{"title": "a", "insight": "b", "score": 3}]`},
		{name: "truncated", payload: `[{"title": "a", "insight": "b"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := analytics.DecodeInsights([]byte(tt.payload))
			assert.Nil(t, got)
			assert.ErrorIs(t, err, apperrors.ErrContractViolation)
		})
	}
}
