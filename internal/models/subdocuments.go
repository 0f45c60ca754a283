package models

import (
	"encoding/json"
	"math"
	"strings"
)

const (
	SeverityNone     = "None"
	SeverityMild     = "Mild"
	SeverityModerate = "Moderate"
	SeveritySevere   = "Severe"
)

type HeadacheDuration struct {
	Hours   float64 `json:"hours"`
	Minutes float64 `json:"minutes"`
}

func (duration HeadacheDuration) TotalHours() float64 {
	return duration.Hours + duration.Minutes/60
}

// HeadacheData is the decoded headache_data column. Severity carries the label
// when the stored value is a string and the raw JSON text for any other
// truthy value, so it never matches a known label in that case.
type HeadacheData struct {
	Severity        string
	SeverityPresent bool
	SeverityIsText  bool
	Duration        *HeadacheDuration
}

type TriggerData struct {
	Emotions        []string
	EmotionsPresent bool
	Activities      []string
	Medications     []string
}

// FoodData keeps every field as raw JSON so values round-trip untouched.
type FoodData struct {
	MealImage       json.RawMessage
	Image           json.RawMessage
	Barcode         json.RawMessage
	ManualFoodEntry json.RawMessage
	Manual          json.RawMessage
	Hydration       json.RawMessage
	Activity        json.RawMessage
}

// ParseHeadacheData never fails: absent, malformed or non-object input
// reports false.
func ParseHeadacheData(raw *string) (HeadacheData, bool) {
	fields, ok := parseObject(raw)
	if !ok {
		return HeadacheData{}, false
	}

	data := HeadacheData{}
	if severity, present := fields["severity"]; present {
		data.Severity, data.SeverityIsText, data.SeverityPresent = truthyValue(severity)
	}
	if duration, present := fields["duration"]; present {
		data.Duration = parseDuration(duration)
	}
	return data, true
}

func ParseTriggerData(raw *string) (TriggerData, bool) {
	fields, ok := parseObject(raw)
	if !ok {
		return TriggerData{}, false
	}

	data := TriggerData{}
	data.Emotions, data.EmotionsPresent = stringList(fields["emotions"])
	data.Activities, _ = stringList(fields["activities"])
	data.Medications, _ = stringList(fields["medications"])
	return data, true
}

func ParseFoodData(raw *string) (FoodData, bool) {
	fields, ok := parseObject(raw)
	if !ok {
		return FoodData{}, false
	}
	return FoodData{
		MealImage:       fields["mealImage"],
		Image:           fields["image"],
		Barcode:         fields["barcode"],
		ManualFoodEntry: fields["manualFoodEntry"],
		Manual:          fields["manual"],
		Hydration:       fields["hydration"],
		Activity:        fields["activity"],
	}, true
}

// DocumentFields decodes a stored sub-document into its raw top-level fields.
func DocumentFields(raw *string) (map[string]json.RawMessage, bool) {
	return parseObject(raw)
}

// IsTruthyJSON reports whether a raw JSON value is set to something other
// than null, false, 0 or the empty string.
func IsTruthyJSON(raw json.RawMessage) bool {
	if len(raw) == 0 {
		return false
	}
	_, _, truthy := truthyValue(raw)
	return truthy
}

func parseObject(raw *string) (map[string]json.RawMessage, bool) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, false
	}
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal([]byte(*raw), &fields); err != nil {
		return nil, false
	}
	// "null" decodes into a nil map without error.
	if fields == nil {
		return nil, false
	}
	return fields, true
}

func truthyValue(raw json.RawMessage) (string, bool, bool) {
	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return "", false, false
	}

	switch typed := value.(type) {
	case string:
		return typed, true, typed != ""
	case float64:
		return string(raw), false, typed != 0 && !math.IsNaN(typed)
	case bool:
		return string(raw), false, typed
	case nil:
		return "", false, false
	default:
		return string(raw), false, true
	}
}

func parseDuration(raw json.RawMessage) *HeadacheDuration {
	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil
	}

	switch typed := value.(type) {
	case map[string]any:
		return &HeadacheDuration{
			Hours:   numberField(typed["hours"]),
			Minutes: numberField(typed["minutes"]),
		}
	case []any:
		return &HeadacheDuration{}
	default:
		return nil
	}
}

func numberField(value any) float64 {
	number, ok := value.(float64)
	if !ok || math.IsNaN(number) {
		return 0
	}
	return number
}

func stringList(raw json.RawMessage) ([]string, bool) {
	if len(raw) == 0 {
		return nil, false
	}
	var values []any
	if err := json.Unmarshal(raw, &values); err != nil || values == nil {
		return nil, false
	}

	result := make([]string, 0, len(values))
	for _, value := range values {
		text, ok := value.(string)
		if !ok {
			continue
		}
		result = append(result, text)
	}
	return result, true
}
