// Package services provides quote estimation and estimate document generation
// for the renovation quote calculator.
package services

import (
	"math"

	"github.com/shopspring/decimal"
)

// ServiceType identifies the renovation project type selected on the quote form.
type ServiceType string

const (
	ServiceUnset    ServiceType = ""
	ServiceBasement ServiceType = "basement"
	ServiceSuite    ServiceType = "suite"
	ServiceKitchen  ServiceType = "kitchen"
	ServiceBathroom ServiceType = "bathroom"
	ServiceReno     ServiceType = "reno"
)

// FinishLevel identifies the finish quality tier.
type FinishLevel string

const (
	FinishStandard FinishLevel = "standard"
	FinishMid      FinishLevel = "mid"
	FinishPremium  FinishLevel = "premium"
)

// Extra identifies a flat-priced add-on.
type Extra string

const (
	ExtraUnknown       Extra = ""
	ExtraBathroom      Extra = "bathroom"
	ExtraKitchenette   Extra = "kitchenette"
	ExtraSeparateEntry Extra = "separate-entry"
	ExtraExterior      Extra = "exterior"
)

// PricingRule is the per-square-foot base rate and display label for a service.
type PricingRule struct {
	BasePerSqFt float64
	Label       string
}

// FinishRule is the multiplier and display label for a finish level.
type FinishRule struct {
	Multiplier float64
	Label      string
}

// ExtraRule is the flat cost and display label for an add-on.
type ExtraRule struct {
	Cost  float64
	Label string
}

// ServiceRules holds the base rate for every known service. ServiceUnset carries
// the rate and label used for anything not in the table.
var ServiceRules = map[ServiceType]PricingRule{
	ServiceUnset:    {BasePerSqFt: 60, Label: "Not selected"},
	ServiceBasement: {BasePerSqFt: 70, Label: "Basement development"},
	ServiceSuite:    {BasePerSqFt: 95, Label: "Legal basement suite"},
	ServiceKitchen:  {BasePerSqFt: 140, Label: "Kitchen renovation"},
	ServiceBathroom: {BasePerSqFt: 220, Label: "Bathroom renovation"},
	ServiceReno:     {BasePerSqFt: 110, Label: "Whole-home renovation"},
}

// FinishRules holds the multiplier for every finish level. Unknown levels use
// FinishStandard.
var FinishRules = map[FinishLevel]FinishRule{
	FinishStandard: {Multiplier: 1, Label: "Standard"},
	FinishMid:      {Multiplier: 1.2, Label: "Mid-range"},
	FinishPremium:  {Multiplier: 1.45, Label: "Premium"},
}

// ExtraRules holds the flat cost of every add-on.
var ExtraRules = map[Extra]ExtraRule{
	ExtraBathroom:      {Cost: 18000, Label: "Add full bathroom"},
	ExtraKitchenette:   {Cost: 22000, Label: "Add kitchenette / wet bar"},
	ExtraSeparateEntry: {Cost: 12000, Label: "Separate entrance / egress changes"},
	ExtraExterior:      {Cost: 8000, Label: "Exterior upgrades as part of project"},
}

// Uncertainty band applied to the area-driven part of the estimate.
const (
	LowBand  = 0.9
	HighBand = 1.1
)

// ParseServiceType maps a form value onto a ServiceType. Anything unrecognised
// becomes ServiceUnset.
func ParseServiceType(s string) ServiceType {
	st := ServiceType(s)
	if _, ok := ServiceRules[st]; ok {
		return st
	}
	return ServiceUnset
}

// ParseFinishLevel maps a form value onto a FinishLevel, defaulting to standard.
func ParseFinishLevel(s string) FinishLevel {
	fl := FinishLevel(s)
	if _, ok := FinishRules[fl]; ok {
		return fl
	}
	return FinishStandard
}

// ParseExtra maps a form value onto an Extra. Unrecognised values become ExtraUnknown.
func ParseExtra(s string) Extra {
	ex := Extra(s)
	if _, ok := ExtraRules[ex]; ok {
		return ex
	}
	return ExtraUnknown
}

// Rule returns the pricing rule for the service, falling back to the unset rule.
func (s ServiceType) Rule() PricingRule {
	if r, ok := ServiceRules[s]; ok {
		return r
	}
	return ServiceRules[ServiceUnset]
}

// Rule returns the finish rule, falling back to standard.
func (f FinishLevel) Rule() FinishRule {
	if r, ok := FinishRules[f]; ok {
		return r
	}
	return FinishRules[FinishStandard]
}

// QuoteInput is a snapshot of the quote form.
type QuoteInput struct {
	Name    string
	Email   string
	Area    float64
	Service ServiceType
	Finish  FinishLevel
	Extras  []Extra
	Notes   string
}

// QuoteResult is the computed estimate for one QuoteInput. It carries the
// client details through so the estimate document can be built from it alone.
type QuoteResult struct {
	Name         string
	Email        string
	Notes        string
	Service      ServiceType
	TypeLabel    string
	AreaValue    float64
	FinishLabel  string
	ExtrasLabels []string
	ExtrasCost   float64
	Low          float64
	High         float64
}

// ComputeQuote prices a quote. It never fails: missing or invalid values fall
// back to the defaults in the pricing tables.
func ComputeQuote(in QuoteInput) QuoteResult {
	service := in.Service.Rule()
	finish := in.Finish.Rule()

	extrasCost := decimal.Zero
	labels := []string{}
	seen := make(map[Extra]bool, len(in.Extras))
	for _, ex := range in.Extras {
		rule, ok := ExtraRules[ex]
		if !ok || seen[ex] {
			continue
		}
		seen[ex] = true
		extrasCost = extrasCost.Add(decimal.NewFromFloat(rule.Cost))
		labels = append(labels, rule.Label)
	}

	area := sanitizeArea(in.Area)
	base := decimal.NewFromFloat(area).
		Mul(decimal.NewFromFloat(service.BasePerSqFt)).
		Mul(decimal.NewFromFloat(finish.Multiplier))
	if base.IsNegative() {
		base = decimal.Zero
	}

	low := base.Mul(decimal.NewFromFloat(LowBand)).Add(extrasCost)
	high := base.Mul(decimal.NewFromFloat(HighBand)).Add(extrasCost)

	return QuoteResult{
		Name:         in.Name,
		Email:        in.Email,
		Notes:        in.Notes,
		Service:      ParseServiceType(string(in.Service)),
		TypeLabel:    service.Label,
		AreaValue:    area,
		FinishLabel:  finish.Label,
		ExtrasLabels: labels,
		ExtrasCost:   extrasCost.InexactFloat64(),
		Low:          low.InexactFloat64(),
		High:         high.InexactFloat64(),
	}
}

// sanitizeArea maps unusable areas (negative, NaN, infinite) to zero.
func sanitizeArea(area float64) float64 {
	if math.IsNaN(area) || math.IsInf(area, 0) || area <= 0 {
		return 0
	}
	return area
}
