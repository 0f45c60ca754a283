package services

import (
	"sort"
	"strings"

	"github.com/terraincognita07/zivora/internal/models"
)

type TriggerPattern struct {
	Name       string `json:"name"`
	Percentage int    `json:"percentage"`
	Count      int    `json:"count"`
}

var MainFoodTriggers = []string{
	"Dark Chocolate",
	"Red Wine",
	"Processed Cheese",
	"Citrus Fruits",
}

// Checked in order; the first matching keyword names the trigger.
var foodTriggerAliases = []struct {
	keyword string
	name    string
}{
	{keyword: "chocolate", name: "Dark Chocolate"},
	{keyword: "wine", name: "Red Wine"},
	{keyword: "cheese", name: "Processed Cheese"},
	{keyword: "citrus", name: "Citrus Fruits"},
}

var foodTriggerKeywords = []string{"chocolate", "wine", "cheese", "citrus", "caffeine", "msg", "alcohol"}

// TriggerPatterns reports how often each main food trigger appears across
// in-range migraines. Percentages are relative to the migraine count.
func TriggerPatterns(migraines []models.Migraine) []TriggerPattern {
	total := len(migraines)
	if total == 0 {
		return []TriggerPattern{}
	}

	counts := make(map[string]int)
	for _, migraine := range migraines {
		for _, trigger := range migraine.Triggers {
			name, ok := normalizeFoodTrigger(trigger)
			if !ok {
				continue
			}
			counts[name]++
		}
	}

	patterns := make([]TriggerPattern, 0, len(MainFoodTriggers))
	for _, name := range MainFoodTriggers {
		count := counts[name]
		patterns = append(patterns, TriggerPattern{
			Name:       name,
			Percentage: int(roundHalfUp(float64(count) / float64(total) * 100)),
			Count:      count,
		})
	}

	sort.SliceStable(patterns, func(i, j int) bool {
		return patterns[i].Percentage > patterns[j].Percentage
	})
	return patterns
}

func normalizeFoodTrigger(raw string) (string, bool) {
	trimmed := strings.TrimSpace(raw)
	lower := strings.ToLower(trimmed)

	isFood := false
	for _, keyword := range foodTriggerKeywords {
		if strings.Contains(lower, keyword) {
			isFood = true
			break
		}
	}
	if !isFood {
		return "", false
	}

	for _, alias := range foodTriggerAliases {
		if strings.Contains(lower, alias.keyword) {
			return alias.name, true
		}
	}
	return trimmed, true
}
