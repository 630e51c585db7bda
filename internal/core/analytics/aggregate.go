package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/SscSPs/multinav_crm/internal/core/domain"
)

// CountBy counts items by key. The result is sorted by count descending; ties
// keep the order in which keys were first encountered.
func CountBy[T any](items []T, key func(T) string) []domain.Count {
	return FlattenCountBy(items, func(item T) []string { return []string{key(item)} })
}

// FlattenCountBy counts every key returned for every item, so an item with
// three tags contributes to three buckets.
func FlattenCountBy[T any](items []T, keys func(T) []string) []domain.Count {
	index := make(map[string]int)
	var counts []domain.Count
	for _, item := range items {
		for _, k := range keys(item) {
			if i, ok := index[k]; ok {
				counts[i].Count++
				continue
			}
			index[k] = len(counts)
			counts = append(counts, domain.Count{Key: k, Count: 1})
		}
	}
	sort.SliceStable(counts, func(i, j int) bool { return counts[i].Count > counts[j].Count })
	if counts == nil {
		counts = []domain.Count{}
	}
	return counts
}

// TopN returns at most n leading buckets.
func TopN(counts []domain.Count, n int) []domain.Count {
	if n < 0 || len(counts) <= n {
		return counts
	}
	return counts[:n]
}

// SumCounts totals the bucket counts.
func SumCounts(counts []domain.Count) int {
	total := 0
	for _, c := range counts {
		total += c.Count
	}
	return total
}

// PercentOfTotal returns count as a percentage of total, or 0 when total is 0.
func PercentOfTotal(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) / float64(total) * 100
}

// orUnknown maps empty grouping values to the Unknown bucket.
func orUnknown(v string) string {
	if v == "" {
		return domain.UnknownLabel
	}
	return v
}

// RegionDistribution counts clients by region.
func RegionDistribution(clients []domain.Client) []domain.Count {
	return CountBy(clients, func(c domain.Client) string { return orUnknown(string(c.Region)) })
}

// ReferralSourceDistribution counts clients by referral source.
func ReferralSourceDistribution(clients []domain.Client) []domain.Count {
	return CountBy(clients, func(c domain.Client) string { return orUnknown(c.ReferralSource) })
}

// EthnicityDistribution counts clients by ethnicity.
func EthnicityDistribution(clients []domain.Client) []domain.Count {
	return CountBy(clients, func(c domain.Client) string { return orUnknown(c.Ethnicity) })
}

// NavigationDistribution counts navigation assistance tags across activities.
func NavigationDistribution(activities []domain.Activity) []domain.Count {
	return FlattenCountBy(activities, func(a domain.Activity) []string { return a.NavigationAssistance })
}

// ServicesDistribution counts accessed services across activities.
func ServicesDistribution(activities []domain.Activity) []domain.Count {
	return FlattenCountBy(activities, func(a domain.Activity) []string { return a.ServicesAccessed })
}

// DaysBetween returns the whole number of days spanned by start and end,
// rounded up, and never less than 1.
func DaysBetween(start, end time.Time) int {
	diff := end.Sub(start)
	if diff < 0 {
		diff = -diff
	}
	days := int(math.Ceil(diff.Hours() / 24))
	if days < 1 {
		return 1
	}
	return days
}

// distinctClients counts distinct client IDs across activities.
func distinctClients(activities []domain.Activity) int {
	seen := make(map[string]struct{}, len(activities))
	for _, a := range activities {
		seen[a.ClientID] = struct{}{}
	}
	return len(seen)
}
