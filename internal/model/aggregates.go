package model

import "time"

// Aggregates is the derived summary over a record set. For an empty
// input set all counts are 0 and NPSScore is 0, never NaN.
type Aggregates struct {
	NPSScore         int     `json:"npsScore"`
	Promoters        int     `json:"promoters"`
	Passives         int     `json:"passives"`
	Detractors       int     `json:"detractors"`
	TotalResponses   int     `json:"totalResponses"`
	AverageScore     float64 `json:"averageScore"`
	PromoterPercent  int     `json:"promoterPercent"`
	PassivePercent   int     `json:"passivePercent"`
	DetractorPercent int     `json:"detractorPercent"`
}

// StoreOption is one store entry for UI dropdowns.
type StoreOption struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// DateRange is the inclusive span of response dates in a record set.
type DateRange struct {
	From *time.Time `json:"from"`
	To   *time.Time `json:"to"`
}

// FilterOptions lists the distinct dimension values of the current
// record set, for populating UI dropdowns.
type FilterOptions struct {
	States     []string      `json:"states"`
	Cities     []string      `json:"cities"`
	Regions    []string      `json:"regions"`
	Stores     []StoreOption `json:"stores"`
	Formats    []string      `json:"formats"`
	SubFormats []string      `json:"subFormats"`
	DateRange  DateRange     `json:"dateRange"`
}

// TrendPoint is one bucket of the NPS time series.
type TrendPoint struct {
	Bucket     string `json:"date"`
	NPSScore   int    `json:"npsScore"`
	Responses  int    `json:"responses"`
	Promoters  int    `json:"promoters"`
	Passives   int    `json:"passives"`
	Detractors int    `json:"detractors"`
}

// BenchmarkDrop flags a dimension whose NPS fell by 10+ points between
// two adjacent 30-day windows, each with at least 20 responses.
type BenchmarkDrop struct {
	Dimension         string `json:"dimension"`
	Key               string `json:"key"`
	CurrentNPS        int    `json:"currentNps"`
	PreviousNPS       int    `json:"previousNps"`
	Delta             int    `json:"delta"`
	CurrentResponses  int    `json:"currentResponses"`
	PreviousResponses int    `json:"previousResponses"`
}

// Anomaly flags a day whose NPS for one store deviates two or more
// standard deviations from that store's own daily mean.
type Anomaly struct {
	StoreCode string  `json:"store"`
	Day       string  `json:"day"`
	NPS       int     `json:"nps"`
	ZScore    float64 `json:"z"`
	Responses int     `json:"responses"`
}

// KeywordCount is one comment keyword with its occurrence count.
type KeywordCount struct {
	Keyword string `json:"keyword"`
	Count   int    `json:"count"`
}

// CategoryNPS is the NPS summary of one feedback category.
type CategoryNPS struct {
	Category string  `json:"category"`
	NPS      int     `json:"nps"`
	Total    int     `json:"total"`
	AvgScore float64 `json:"avg"`
}

// Reasons bundles the top comment keywords and the worst categories.
type Reasons struct {
	Keywords   []KeywordCount `json:"keywords"`
	Categories []CategoryNPS  `json:"categories"`
}
