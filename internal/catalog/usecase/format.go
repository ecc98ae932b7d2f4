package usecase

import (
	"fmt"
	"strings"

	"dealership-assistant/internal/model"
)

const maxListedVehicles = 3

// Summary renders a one-line customer-facing description of a vehicle.
func (uc *implUseCase) Summary(v model.Vehicle) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d %s %s %s - $%s", v.Year, v.Make, v.Model, v.Variant, formatPrice(v.Price))

	if v.FuelType != "" {
		fmt.Fprintf(&b, ", %s", v.FuelType)
	}
	if len(v.Features) > 0 {
		shown := v.Features
		if len(shown) > 3 {
			shown = shown[:3]
		}
		fmt.Fprintf(&b, ". Key features: %s", strings.Join(shown, ", "))
	}

	return b.String()
}

// FormatList renders a spoken-style listing of search results: a single
// match reads as one sentence, multiple matches become a numbered list
// capped at three with a trailing count.
func (uc *implUseCase) FormatList(vehicles []model.Vehicle) string {
	if len(vehicles) == 0 {
		return "We don't have any vehicles matching those criteria at the moment."
	}

	if len(vehicles) == 1 {
		return fmt.Sprintf("We have the %s available.", uc.Summary(vehicles[0]))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "We have %d options available. ", len(vehicles))

	shown := vehicles
	if len(shown) > maxListedVehicles {
		shown = shown[:maxListedVehicles]
	}
	for i, v := range shown {
		fmt.Fprintf(&b, "%d. %s. ", i+1, uc.Summary(v))
	}

	if len(vehicles) > maxListedVehicles {
		fmt.Fprintf(&b, "And %d more options.", len(vehicles)-maxListedVehicles)
	}

	return strings.TrimSpace(b.String())
}

// formatPrice renders a price with thousands separators, e.g. 28500 -> "28,500".
func formatPrice(price float64) string {
	n := int64(price)
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}

	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	return strings.Join(parts, ",")
}
