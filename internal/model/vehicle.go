package model

import "fmt"

// Vehicle is read-only reference data from the catalog.
type Vehicle struct {
	ID           string   `json:"id"`
	Make         string   `json:"make"`
	Model        string   `json:"model"`
	Variant      string   `json:"variant"`
	Year         int      `json:"year"`
	Category     string   `json:"category"`
	Price        float64  `json:"price"`
	FuelType     string   `json:"fuel_type"`
	Transmission string   `json:"transmission"`
	Features     []string `json:"features"`
	Colors       []string `json:"colors"`
	Available    bool     `json:"available"`
}

// FullName returns the customer-facing vehicle name, e.g. "2024 Toyota Camry".
func (v Vehicle) FullName() string {
	return fmt.Sprintf("%d %s %s", v.Year, v.Make, v.Model)
}
