package calculator

import (
	"regexp"
	"sort"
	"strings"

	"github.com/Bksingh9/nps-narrative-hub-sub000/internal/model"
)

const (
	topKeywords      = 8
	worstCategories  = 5
	minKeywordLength = 4
)

var wordRe = regexp.MustCompile(`[a-z]+`)

// TopReasons mines free-text comments for the most frequent keywords
// and ranks feedback categories by NPS, worst first. It backs the
// "why is the score what it is" panel on the dashboard.
func TopReasons(records []model.CanonicalRecord) model.Reasons {
	bag := make(map[string]int)
	for _, r := range records {
		if r.Comments == "" {
			continue
		}
		for _, w := range wordRe.FindAllString(strings.ToLower(r.Comments), -1) {
			if len(w) < minKeywordLength {
				continue
			}
			bag[w]++
		}
	}

	keywords := make([]model.KeywordCount, 0, len(bag))
	for w, c := range bag {
		keywords = append(keywords, model.KeywordCount{Keyword: w, Count: c})
	}
	sort.Slice(keywords, func(i, j int) bool {
		if keywords[i].Count != keywords[j].Count {
			return keywords[i].Count > keywords[j].Count
		}
		return keywords[i].Keyword < keywords[j].Keyword
	})
	if len(keywords) > topKeywords {
		keywords = keywords[:topKeywords]
	}

	var categorized []model.CanonicalRecord
	for _, r := range records {
		if r.Category != "" && r.Category != "Unknown" {
			categorized = append(categorized, r)
		}
	}
	byCategory := BreakdownBy(categorized, DimCategory)

	categories := make([]model.CategoryNPS, 0, len(byCategory))
	for cat, agg := range byCategory {
		categories = append(categories, model.CategoryNPS{
			Category: cat,
			NPS:      agg.NPSScore,
			Total:    agg.TotalResponses,
			AvgScore: agg.AverageScore,
		})
	}
	sort.Slice(categories, func(i, j int) bool {
		if categories[i].NPS != categories[j].NPS {
			return categories[i].NPS < categories[j].NPS
		}
		return categories[i].Category < categories[j].Category
	})
	if len(categories) > worstCategories {
		categories = categories[:worstCategories]
	}

	return model.Reasons{Keywords: keywords, Categories: categories}
}
