package utils

import (
	"fmt"
	"orca-service/internal/pkg/constvars"
	"strings"

	"github.com/shopspring/decimal"
)

var bgConversionFactor = decimal.NewFromFloat(constvars.BGConversionFactor)

// NormalizeBGUnits maps the spellings the API and the forms use onto the two
// canonical unit strings.
func NormalizeBGUnits(units string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(units)) {
	case "mg/dl":
		return constvars.BGUnitsMgdl, true
	case "mmol/l":
		return constvars.BGUnitsMmol, true
	default:
		return "", false
	}
}

// ConvertBG converts a blood glucose value between units. mmol/L results are
// rounded to one decimal and mg/dL results to a whole number. Unknown units
// return the value unchanged.
func ConvertBG(value float64, from, to string) float64 {
	fromUnits, okFrom := NormalizeBGUnits(from)
	toUnits, okTo := NormalizeBGUnits(to)
	if !okFrom || !okTo {
		return value
	}

	amount := decimal.NewFromFloat(value)
	switch {
	case fromUnits == constvars.BGUnitsMgdl && toUnits == constvars.BGUnitsMmol:
		amount = amount.Div(bgConversionFactor)
	case fromUnits == constvars.BGUnitsMmol && toUnits == constvars.BGUnitsMgdl:
		amount = amount.Mul(bgConversionFactor)
	}

	result, _ := roundBG(amount, toUnits).Float64()
	return result
}

// FormatBG renders a value already expressed in units, e.g. "5.5 mmol/L".
func FormatBG(value float64, units string) string {
	normalized, ok := NormalizeBGUnits(units)
	if !ok {
		return fmt.Sprintf("%g %s", value, units)
	}
	return fmt.Sprintf("%s %s", bgString(value, normalized), normalized)
}

// FormatBGRange renders a target range, e.g. "5.6-6.7 mmol/L".
func FormatBGRange(low, high float64, units string) string {
	normalized, ok := NormalizeBGUnits(units)
	if !ok {
		return fmt.Sprintf("%g-%g %s", low, high, units)
	}
	return fmt.Sprintf("%s-%s %s", bgString(low, normalized), bgString(high, normalized), normalized)
}

func bgString(value float64, units string) string {
	places := int32(0)
	if units == constvars.BGUnitsMmol {
		places = 1
	}
	return decimal.NewFromFloat(value).StringFixed(places)
}

func roundBG(amount decimal.Decimal, units string) decimal.Decimal {
	if units == constvars.BGUnitsMmol {
		return amount.Round(1)
	}
	return amount.Round(0)
}
