package analytics

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/SscSPs/multinav_crm/internal/apperrors"
	"github.com/SscSPs/multinav_crm/internal/core/domain"
)

// Bounds on how much of each distribution is forwarded to the narrative service.
const (
	insightTopReferralSources = 3
	insightTopEthnicities     = 5
	insightTopTags            = 5
	insightTopLanguages       = 5
)

// BuildInsightRequest reduces a program report to the compact summary sent to
// the narrative service. Only aggregate counts leave the system; no client
// names, identifiers or free text are included.
func BuildInsightRequest(report domain.ProgramReport) domain.InsightRequest {
	return domain.InsightRequest{
		ClientSummary: domain.InsightClientSummary{
			Total:              report.Clients.Total,
			TopEthnicities:     TopN(report.Clients.Ethnicities, insightTopEthnicities),
			TopReferralSources: TopN(report.Clients.ReferralSources, insightTopReferralSources),
			Regions:            report.Clients.Regions,
		},
		ActivitySummary: domain.InsightActivitySummary{
			Total:         report.Activities.Total,
			TotalItems:    report.Activities.TotalItems,
			Discharges:    report.Activities.TotalDischarges,
			TopNavigation: TopN(report.Activities.NavigationAssistance, insightTopTags),
			TopServices:   TopN(report.Activities.ServicesAccessed, insightTopTags),
		},
		WorkforceSummary: domain.InsightWorkforceSummary{
			TotalFTE:     report.Workforce.TotalFTE.StringFixed(2),
			NorthFTE:     report.Workforce.NorthFTE.StringFixed(2),
			SouthFTE:     report.Workforce.SouthFTE.StringFixed(2),
			TopLanguages: TopN(report.Workforce.Languages, insightTopLanguages),
		},
		DateRange: domain.InsightDateRange{
			Start: report.Start.Format("2006-01-02"),
			End:   report.End.Format("2006-01-02"),
		},
	}
}

var insightKeys = map[string]bool{"title": true, "insight": true, "recommendation": true}

// DecodeInsights validates a narrative service payload. It must be a JSON array
// whose elements are objects with a non-empty string title and insight, an
// optional string recommendation, and nothing else. Any deviation is an
// apperrors.ErrContractViolation; the payload is never partially accepted.
func DecodeInsights(payload []byte) ([]domain.Insight, error) {
	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, fmt.Errorf("%w: payload is not a JSON array", apperrors.ErrContractViolation)
	}
	var items []json.RawMessage
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrContractViolation, err)
	}

	insights := make([]domain.Insight, 0, len(items))
	for i, raw := range items {
		insight, err := decodeInsight(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: item %d: %v", apperrors.ErrContractViolation, i, err)
		}
		insights = append(insights, insight)
	}
	return insights, nil
}

func decodeInsight(raw json.RawMessage) (domain.Insight, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return domain.Insight{}, fmt.Errorf("not an object")
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return domain.Insight{}, err
	}
	for k := range fields {
		if !insightKeys[k] {
			return domain.Insight{}, fmt.Errorf("unexpected field %q", k)
		}
	}

	var out domain.Insight
	var err error
	if out.Title, err = requiredString(fields, "title"); err != nil {
		return domain.Insight{}, err
	}
	if out.Insight, err = requiredString(fields, "insight"); err != nil {
		return domain.Insight{}, err
	}
	if raw, ok := fields["recommendation"]; ok {
		if out.Recommendation, err = stringValue(raw); err != nil {
			return domain.Insight{}, fmt.Errorf("recommendation: %v", err)
		}
	}
	return out, nil
}

func requiredString(fields map[string]json.RawMessage, key string) (string, error) {
	raw, ok := fields[key]
	if !ok {
		return "", fmt.Errorf("missing %s", key)
	}
	v, err := stringValue(raw)
	if err != nil {
		return "", fmt.Errorf("%s: %v", key, err)
	}
	if v == "" {
		return "", fmt.Errorf("empty %s", key)
	}
	return v, nil
}

// stringValue decodes raw as a JSON string; null and other types are rejected.
func stringValue(raw json.RawMessage) (string, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '"' {
		return "", fmt.Errorf("not a string")
	}
	var s string
	if err := json.Unmarshal(trimmed, &s); err != nil {
		return "", err
	}
	return s, nil
}
