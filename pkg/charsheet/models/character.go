// Package models defines data structures for character sheet generation.
package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Character is one character record decoded from a JSON input file.
// Missing numeric keys decode as 0; unknown keys are ignored.
type Character struct {
	// Name is the display name.
	Name string `json:"name"`
	// SeqName is the role/sequence label.
	SeqName string `json:"seqName"`

	HP  float64 `json:"hp"`
	ME  float64 `json:"me"`
	Str float64 `json:"str"`
	Agi float64 `json:"agi"`
	Wil float64 `json:"wil"`
	Obs float64 `json:"obs"`
	Wis float64 `json:"wis"`
	Cha float64 `json:"cha"`

	// PathwayID selects the skill workbook sheet.
	PathwayID LooseString `json:"pathwayId"`
	// SkillIDs lists skill identifiers in output order. Empty entries are skipped.
	SkillIDs []LooseString `json:"skillIds"`
}

// Attribute returns the value of the attribute with the given key
// (hp, me, str, agi, wil, obs, wis, cha).
func (c *Character) Attribute(key string) float64 {
	switch key {
	case "hp":
		return c.HP
	case "me":
		return c.ME
	case "str":
		return c.Str
	case "agi":
		return c.Agi
	case "wil":
		return c.Wil
	case "obs":
		return c.Obs
	case "wis":
		return c.Wis
	case "cha":
		return c.Cha
	}
	return 0
}

// SheetName returns the pathway id with leading zeros stripped.
func (c *Character) SheetName() string {
	return strings.TrimLeft(string(c.PathwayID), "0")
}

// LooseString is a JSON value that may be written as a string, a number,
// a boolean or null. Falsy values (null, "", 0, false) decode to "".
type LooseString string

// UnmarshalJSON implements json.Unmarshaler.
func (s *LooseString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}

	switch data[0] {
	case '"':
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = LooseString(str)
	case 't':
		*s = "True"
	case 'f':
		*s = ""
	default:
		var num json.Number
		if err := json.Unmarshal(data, &num); err != nil {
			return fmt.Errorf("unsupported id value %s", data)
		}
		*s = LooseString(formatNumber(num))
	}
	return nil
}

// formatNumber renders integral numbers without a fraction and zero as "".
func formatNumber(num json.Number) string {
	if i, err := num.Int64(); err == nil {
		if i == 0 {
			return ""
		}
		return strconv.FormatInt(i, 10)
	}
	f, err := num.Float64()
	if err != nil {
		return num.String()
	}
	if f == 0 {
		return ""
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
