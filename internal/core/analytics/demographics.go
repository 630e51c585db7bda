package analytics

import (
	"math"
	"time"

	"github.com/SscSPs/multinav_crm/internal/core/domain"
)

// AgeBrackets are the population pyramid brackets, youngest first.
var AgeBrackets = []string{"0-9", "10-19", "20-29", "30-39", "40-49", "50-59", "60-69", "70+"}

// AgeBucket maps an age to its pyramid bracket. A nil or negative age has no
// bracket.
func AgeBucket(age *int) (string, bool) {
	if age == nil || *age < 0 {
		return "", false
	}
	i := *age / 10
	if i >= len(AgeBrackets) {
		i = len(AgeBrackets) - 1
	}
	return AgeBrackets[i], true
}

// PopulationPyramid buckets clients by age bracket and sex. Male counts are
// stored negated. Clients of other sexes or without a derivable age are left
// out of the pyramid.
func PopulationPyramid(clients []domain.Client, now time.Time) []domain.PyramidRow {
	rows := make([]domain.PyramidRow, len(AgeBrackets))
	pos := make(map[string]int, len(AgeBrackets))
	for i, b := range AgeBrackets {
		rows[i].Bracket = b
		pos[b] = i
	}
	for _, c := range clients {
		if c.Sex != domain.SexMale && c.Sex != domain.SexFemale {
			continue
		}
		bracket, ok := AgeBucket(c.AgeAt(now))
		if !ok {
			continue
		}
		row := &rows[pos[bracket]]
		if c.Sex == domain.SexMale {
			row.Male--
		} else {
			row.Female++
		}
	}
	return rows
}

// PyramidScale returns the symmetric axis bound for rows: the largest bracket
// magnitude plus ten percent, rounded up.
func PyramidScale(rows []domain.PyramidRow) int {
	maxCount := 0
	for _, r := range rows {
		if -r.Male > maxCount {
			maxCount = -r.Male
		}
		if r.Female > maxCount {
			maxCount = r.Female
		}
	}
	return int(math.Ceil(float64(maxCount) * 1.1))
}

// reportAgeGroups are the coarse groups used by the unified report.
var reportAgeGroups = []struct {
	label    string
	min, max int
}{
	{"0-17", 0, 17},
	{"18-30", 18, 30},
	{"31-50", 31, 50},
	{"51-65", 51, 65},
	{"65+", 66, math.MaxInt},
}

// AgeGroupDistribution counts clients into the unified report's age groups,
// in group order. Clients without a derivable age are skipped.
func AgeGroupDistribution(clients []domain.Client, now time.Time) []domain.Count {
	counts := make([]domain.Count, len(reportAgeGroups))
	for i, g := range reportAgeGroups {
		counts[i].Key = g.label
	}
	for _, c := range clients {
		age := c.AgeAt(now)
		if age == nil {
			continue
		}
		for i, g := range reportAgeGroups {
			if *age >= g.min && *age <= g.max {
				counts[i].Count++
				break
			}
		}
	}
	return counts
}

// AverageAge returns the mean derived age, or nil when no client has one.
func AverageAge(clients []domain.Client, now time.Time) *float64 {
	sum, n := 0, 0
	for _, c := range clients {
		if age := c.AgeAt(now); age != nil {
			sum += *age
			n++
		}
	}
	if n == 0 {
		return nil
	}
	avg := math.Round(float64(sum)/float64(n)*10) / 10
	return &avg
}
