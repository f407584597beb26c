// Package inference classifies raw spreadsheet columns into the semantic
// base types the attribute transformer needs. Detection is deterministic:
// fixed token vocabulary for flags, explicit date layouts, strict ratio
// thresholds for dates and numbers.
package inference

import (
	"strconv"
	"strings"
	"time"

	"github.com/aiaiai-hi/Report-App/domain/attribute"
)

// Config defines the detection thresholds
type Config struct {
	DateThreshold   float64 // fraction of values that must parse as dates, exclusive
	NumberThreshold float64 // fraction of values that must parse as numbers, exclusive
	MaxFlagValues   int     // max distinct normalized values for a flag column
}

// DefaultConfig returns the thresholds the catalog pipeline is calibrated to
func DefaultConfig() Config {
	return Config{
		DateThreshold:   0.70,
		NumberThreshold: 0.80,
		MaxFlagValues:   3,
	}
}

// Inferencer detects column base types with the given config
type Inferencer struct {
	config Config
}

// New creates an inferencer with the given config
func New(config Config) *Inferencer {
	return &Inferencer{config: config}
}

// flagTokens is the boolean-token vocabulary. A column is a flag iff all its
// distinct normalized values fall inside this set.
var flagTokens = map[string]bool{
	"да": true, "нет": true,
	"true": true, "false": true,
	"1": true, "0": true,
	"yes": true, "no": true,
	"y": true, "n": true,
	"вкл": true, "выкл": true,
	"on": true, "off": true,
	"активен": true, "неактивен": true,
}

// dateLayouts are tried in order for every candidate value. Two-digit-year
// variants cover exports from older office templates.
var dateLayouts = []string{
	"02.01.2006",
	"02/01/2006",
	"2006-01-02",
	"02-01-2006",
	"02.01.06",
	"02/01/06",
	"06-01-02",
	"02-01-06",
	"2006.01.02",
	"2006/01/02",
}

// lenientLayouts back the generic fallback parse attempted after the explicit
// layouts, mirroring what a permissive datetime parser would accept.
var lenientLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"02.01.2006 15:04:05",
	"02.01.2006 15:04",
	"2006-01-02 15:04",
}

// DetectType classifies a column of raw values. Only non-missing values are
// evaluated; a column with no usable values defaults to text. Malformed
// individual values never fail the call - they just don't count toward the
// date/number ratios.
func (inf *Inferencer) DetectType(values []string) attribute.BaseType {
	clean := make([]string, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			clean = append(clean, v)
		}
	}
	if len(clean) == 0 {
		return attribute.BaseTypeText
	}

	if inf.isFlagColumn(clean) {
		return attribute.BaseTypeFlag
	}

	dateCount := 0
	for _, v := range clean {
		if IsDate(v) {
			dateCount++
		}
	}
	if float64(dateCount)/float64(len(clean)) > inf.config.DateThreshold {
		return attribute.BaseTypeDate
	}

	numericCount := 0
	for _, v := range clean {
		if IsNumeric(v) {
			numericCount++
		}
	}
	if float64(numericCount)/float64(len(clean)) > inf.config.NumberThreshold {
		return attribute.BaseTypeNumber
	}

	return attribute.BaseTypeText
}

func (inf *Inferencer) isFlagColumn(values []string) bool {
	distinct := make(map[string]bool)
	for _, v := range values {
		normalized := strings.ToLower(strings.TrimSpace(v))
		if !flagTokens[normalized] {
			return false
		}
		distinct[normalized] = true
	}
	return len(distinct) <= inf.config.MaxFlagValues
}

// IsDate reports whether a single value parses as a date: first against the
// explicit layout list, then against the lenient fallback layouts.
func IsDate(value string) bool {
	v := strings.TrimSpace(value)
	if v == "" {
		return false
	}
	for _, layout := range dateLayouts {
		if _, err := time.Parse(layout, v); err == nil {
			return true
		}
	}
	for _, layout := range lenientLayouts {
		if _, err := time.Parse(layout, v); err == nil {
			return true
		}
	}
	return false
}

// IsNumeric reports whether a value converts to a float after normalizing the
// decimal comma and stripping spaces.
func IsNumeric(value string) bool {
	v := strings.ReplaceAll(strings.TrimSpace(value), ",", ".")
	v = strings.ReplaceAll(v, " ", "")
	if v == "" {
		return false
	}
	_, err := strconv.ParseFloat(v, 64)
	return err == nil
}
