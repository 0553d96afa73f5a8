package service

import (
	"strings"

	"github.com/GlitchedDuck/Manager-hub/internal/model"
)

func trim(s string) string { return strings.TrimSpace(s) }

// orDefault returns v, or the first value of the enum set when v is empty.
func orDefault(v, set string) string {
	if v == "" {
		return model.EnumDefault(set)
	}
	return v
}

func byDate(a, b model.Date) int { return a.Compare(b.Time) }
