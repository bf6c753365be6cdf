package model

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// FlexFloat accepts a JSON number or a numeric string. Blank strings and null count as absent.
type FlexFloat struct {
	Value     float64
	Present   bool
	Malformed bool
}

func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	raw := string(data)

	if len(data) > 0 && data[0] == '"' {
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}

		raw = strings.TrimSpace(text)
		if raw == "" {
			return nil
		}
	}

	f.Present = true

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		f.Malformed = true

		return nil
	}

	f.Value = value

	return nil
}

// BusinessInput is the create / full-update payload.
type BusinessInput struct {
	Name         *string   `json:"name"`
	Category     *string   `json:"category"`
	Address      *string   `json:"address"`
	Phone        *string   `json:"phone"`
	Latitude     FlexFloat `json:"latitude"`
	Longitude    FlexFloat `json:"longitude"`
	OpeningHours *string   `json:"openingHours"`
}

// Validate reports the first missing required field, checked in the order
// name, category, address, latitude, longitude, then coordinate ranges.
func (in *BusinessInput) Validate() error {
	required := []struct {
		field   string
		present bool
	}{
		{"name", !blank(in.Name)},
		{"category", !blank(in.Category)},
		{"address", !blank(in.Address)},
		{"latitude", in.Latitude.Present},
		{"longitude", in.Longitude.Present},
	}

	for _, r := range required {
		if !r.present {
			return &ValidationError{Field: r.field}
		}
	}

	if err := checkCoordinate("latitude", in.Latitude, 90); err != nil {
		return err
	}

	return checkCoordinate("longitude", in.Longitude, 180)
}

// Business builds the entity described by the input. Validate first.
func (in *BusinessInput) Business() Business {
	lat, lng := in.Latitude.Value, in.Longitude.Value

	return Business{
		Name:         strings.TrimSpace(*in.Name),
		Category:     strings.TrimSpace(*in.Category),
		Address:      strings.TrimSpace(*in.Address),
		Phone:        optional(in.Phone),
		Latitude:     &lat,
		Longitude:    &lng,
		OpeningHours: optional(in.OpeningHours),
	}
}

func checkCoordinate(field string, value FlexFloat, limit float64) error {
	if value.Malformed || math.IsNaN(value.Value) || math.IsInf(value.Value, 0) {
		return &ValidationError{Field: field, Reason: "must be a number"}
	}

	if math.Abs(value.Value) > limit {
		return &ValidationError{Field: field, Reason: "must be between -" + strconv.Itoa(int(limit)) + " and " + strconv.Itoa(int(limit))}
	}

	return nil
}

func blank(value *string) bool {
	return value == nil || strings.TrimSpace(*value) == ""
}

func optional(value *string) *string {
	if blank(value) {
		return nil
	}

	trimmed := strings.TrimSpace(*value)

	return &trimmed
}
