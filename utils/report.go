package utils

import (
	"encoding/json"
	"math"
	"time"

	"github.com/1716001473/ZhiJieHealth/models"
)

const DateLayout = "2006-01-02"

var defaultRecommended = models.NutritionSummary{
	Calories: 2000,
	Protein:  75,
	Fat:      66,
	Carb:     275,
}

// DefaultRecommended is the recommendation used when the source has none.
func DefaultRecommended() models.NutritionSummary {
	return defaultRecommended
}

// SafePercent returns value/max as a whole percentage clamped to [0, 100].
// Non-numeric input, a zero denominator or a non-finite ratio all give 0.
func SafePercent(value, max any) int {
	numerator := ToNumber(value)
	denominator := ToNumber(max)
	if denominator == 0 {
		return 0
	}

	pct := numerator / denominator * 100
	if !isFinite(pct) {
		return 0
	}

	// over-target display needs the raw ratio, not this value
	return int(roundHalfUp(math.Min(100, math.Max(0, pct))))
}

// NormalizeReport turns a loosely typed daily report into a fully populated
// one. It accepts nil, decoded JSON (map[string]any), raw JSON bytes or any
// JSON-marshalable value.
func NormalizeReport(raw any) models.DailyNutritionReport {
	return NormalizeReportAt(raw, time.Now())
}

// NormalizeReportAt is NormalizeReport with an explicit "today".
func NormalizeReportAt(raw any, now time.Time) models.DailyNutritionReport {
	obj := asObject(raw)

	date, _ := obj["date"].(string)
	if date == "" {
		date = now.UTC().Format(DateLayout)
	}

	return models.DailyNutritionReport{
		Date:        date,
		Total:       summaryOf(asObject(obj["total"])),
		Recommended: WithRecommendedDefaults(summaryOf(asObject(obj["recommended"]))),
		ProteinPct:  ToNumber(obj["protein_pct"]),
		FatPct:      ToNumber(obj["fat_pct"]),
		CarbPct:     ToNumber(obj["carb_pct"]),
		Records:     normalizeRecords(obj["records"]),
	}
}

// ParseReport decodes a JSON body and normalizes it. Undecodable input
// yields a fully defaulted report.
func ParseReport(data []byte) models.DailyNutritionReport {
	return NormalizeReport(json.RawMessage(data))
}

// WithRecommendedDefaults replaces every zero field of s with the default
// for that field. Fields are merged one by one.
func WithRecommendedDefaults(s models.NutritionSummary) models.NutritionSummary {
	if s.Calories == 0 {
		s.Calories = defaultRecommended.Calories
	}
	if s.Protein == 0 {
		s.Protein = defaultRecommended.Protein
	}
	if s.Fat == 0 {
		s.Fat = defaultRecommended.Fat
	}
	if s.Carb == 0 {
		s.Carb = defaultRecommended.Carb
	}
	return s
}

// NormalizeMealRecord converts one loosely typed record.
func NormalizeMealRecord(raw any) models.MealRecord {
	obj := asObject(raw)
	return models.MealRecord{
		ID:         toUint(obj["id"]),
		UserID:     toUint(obj["user_id"]),
		FoodID:     optionalUint(obj["food_id"]),
		FoodName:   toString(obj["food_name"]),
		ImageURL:   optionalString(obj["image_url"]),
		MealDate:   toString(obj["meal_date"]),
		MealType:   toString(obj["meal_type"]),
		UnitWeight: nonNegative(ToNumber(obj["unit_weight"])),
		Note:       optionalString(obj["note"]),
		Calories:   nonNegative(ToNumber(obj["calories"])),
		Protein:    nonNegative(ToNumber(obj["protein"])),
		Fat:        nonNegative(ToNumber(obj["fat"])),
		Carb:       nonNegative(ToNumber(obj["carb"])),
	}
}

func summaryOf(obj map[string]any) models.NutritionSummary {
	return models.NutritionSummary{
		Calories: nonNegative(ToNumber(obj["calories"])),
		Protein:  nonNegative(ToNumber(obj["protein"])),
		Fat:      nonNegative(ToNumber(obj["fat"])),
		Carb:     nonNegative(ToNumber(obj["carb"])),
	}
}

// normalizeRecords keeps order and drops elements that are not objects.
func normalizeRecords(v any) []models.MealRecord {
	records := []models.MealRecord{}
	if v == nil {
		return records
	}

	items, ok := v.([]any)
	if !ok {
		b, err := json.Marshal(v)
		if err != nil {
			return records
		}
		if err := json.Unmarshal(b, &items); err != nil {
			return records
		}
	}

	for _, item := range items {
		obj := asObject(item)
		if obj == nil {
			continue
		}
		records = append(records, NormalizeMealRecord(obj))
	}
	return records
}

// asObject returns v as a JSON object, or nil when v is not one.
// Reading from the nil map is safe and yields nil for every key.
func asObject(v any) map[string]any {
	switch t := v.(type) {
	case nil:
		return nil
	case map[string]any:
		return t
	case json.RawMessage:
		return decodeObject(t)
	case []byte:
		return decodeObject(t)
	}

	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return decodeObject(b)
}

func decodeObject(b []byte) map[string]any {
	var obj map[string]any
	if err := json.Unmarshal(b, &obj); err != nil {
		return nil
	}
	return obj
}
