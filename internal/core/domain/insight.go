package domain

// Insight is one narrative finding produced from aggregate report data.
type Insight struct {
	Title          string `json:"title"`
	Insight        string `json:"insight"`
	Recommendation string `json:"recommendation,omitempty"`
}
