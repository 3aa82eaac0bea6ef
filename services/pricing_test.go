package services

import (
	"math"
	"reflect"
	"testing"
)

func TestComputeQuote_KnownEstimates(t *testing.T) {
	tests := []struct {
		name       string
		in         QuoteInput
		wantLow    float64
		wantHigh   float64
		wantExtras float64
		wantType   string
		wantFinish string
	}{
		{
			name:       "kitchen standard no extras",
			in:         QuoteInput{Area: 500, Service: ServiceKitchen, Finish: FinishStandard},
			wantLow:    63000,
			wantHigh:   77000,
			wantType:   "Kitchen renovation",
			wantFinish: "Standard",
		},
		{
			name:       "bathroom premium with bathroom add-on",
			in:         QuoteInput{Area: 100, Service: ServiceBathroom, Finish: FinishPremium, Extras: []Extra{ExtraBathroom}},
			wantLow:    46710,
			wantHigh:   53090,
			wantExtras: 18000,
			wantType:   "Bathroom renovation",
			wantFinish: "Premium",
		},
		{
			name:       "basement mid",
			in:         QuoteInput{Area: 1000, Service: ServiceBasement, Finish: FinishMid},
			wantLow:    75600,
			wantHigh:   92400,
			wantType:   "Basement development",
			wantFinish: "Mid-range",
		},
		{
			name: "suite with every add-on",
			in: QuoteInput{Area: 900, Service: ServiceSuite, Finish: FinishStandard,
				Extras: []Extra{ExtraBathroom, ExtraKitchenette, ExtraSeparateEntry, ExtraExterior}},
			wantLow:    76950 + 60000,
			wantHigh:   94050 + 60000,
			wantExtras: 60000,
			wantType:   "Legal basement suite",
			wantFinish: "Standard",
		},
		{
			name:       "unselected service uses default rate",
			in:         QuoteInput{Area: 100, Finish: FinishStandard},
			wantLow:    5400,
			wantHigh:   6600,
			wantType:   "Not selected",
			wantFinish: "Standard",
		},
		{
			name:       "unknown service string falls back",
			in:         QuoteInput{Area: 100, Service: ServiceType("garage")},
			wantLow:    5400,
			wantHigh:   6600,
			wantType:   "Not selected",
			wantFinish: "Standard",
		},
		{
			name:       "unknown finish falls back to standard",
			in:         QuoteInput{Area: 100, Service: ServiceReno, Finish: FinishLevel("luxury")},
			wantLow:    9900,
			wantHigh:   12100,
			wantType:   "Whole-home renovation",
			wantFinish: "Standard",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeQuote(tt.in)
			if got.Low != tt.wantLow || got.High != tt.wantHigh {
				t.Errorf("range = %v..%v, want %v..%v", got.Low, got.High, tt.wantLow, tt.wantHigh)
			}
			if got.ExtrasCost != tt.wantExtras {
				t.Errorf("ExtrasCost = %v, want %v", got.ExtrasCost, tt.wantExtras)
			}
			if got.TypeLabel != tt.wantType {
				t.Errorf("TypeLabel = %q, want %q", got.TypeLabel, tt.wantType)
			}
			if got.FinishLabel != tt.wantFinish {
				t.Errorf("FinishLabel = %q, want %q", got.FinishLabel, tt.wantFinish)
			}
		})
	}
}

func TestComputeQuote_ZeroAreaIsExtrasOnly(t *testing.T) {
	for service := range ServiceRules {
		for finish := range FinishRules {
			in := QuoteInput{Service: service, Finish: finish, Extras: []Extra{ExtraKitchenette, ExtraExterior}}
			got := ComputeQuote(in)
			if got.Low != 30000 || got.High != 30000 || got.ExtrasCost != 30000 {
				t.Errorf("%s/%s: got low=%v high=%v extras=%v, want all 30000",
					service, finish, got.Low, got.High, got.ExtrasCost)
			}
		}
	}
}

func TestComputeQuote_HighNeverBelowLowAndMonotonicInArea(t *testing.T) {
	areas := []float64{0, 0.5, 1, 99.9, 100, 450, 1200, 5000, 1e6}
	extraSets := [][]Extra{nil, {ExtraBathroom}, {ExtraSeparateEntry, ExtraExterior}}

	for service := range ServiceRules {
		for finish := range FinishRules {
			for _, extras := range extraSets {
				prevLow, prevHigh := math.Inf(-1), math.Inf(-1)
				for _, area := range areas {
					got := ComputeQuote(QuoteInput{Area: area, Service: service, Finish: finish, Extras: extras})
					if got.High < got.Low {
						t.Fatalf("%s/%s area %v: high %v < low %v", service, finish, area, got.High, got.Low)
					}
					if got.Low < prevLow || got.High < prevHigh {
						t.Fatalf("%s/%s area %v: range decreased (%v..%v after %v..%v)",
							service, finish, area, got.Low, got.High, prevLow, prevHigh)
					}
					prevLow, prevHigh = got.Low, got.High
				}
			}
		}
	}
}

func TestComputeQuote_InvalidAreas(t *testing.T) {
	tests := []struct {
		name string
		area float64
	}{
		{"negative", -250},
		{"NaN", math.NaN()},
		{"+Inf", math.Inf(1)},
		{"-Inf", math.Inf(-1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeQuote(QuoteInput{Area: tt.area, Service: ServiceKitchen, Extras: []Extra{ExtraBathroom}})
			if got.AreaValue != 0 {
				t.Errorf("AreaValue = %v, want 0", got.AreaValue)
			}
			if got.Low != 18000 || got.High != 18000 {
				t.Errorf("range = %v..%v, want extras only", got.Low, got.High)
			}
		})
	}
}

func TestComputeQuote_Extras(t *testing.T) {
	t.Run("duplicates counted once in first order", func(t *testing.T) {
		got := ComputeQuote(QuoteInput{Extras: []Extra{ExtraExterior, ExtraBathroom, ExtraExterior}})
		if got.ExtrasCost != 26000 {
			t.Errorf("ExtrasCost = %v, want 26000", got.ExtrasCost)
		}
		want := []string{"Exterior upgrades as part of project", "Add full bathroom"}
		if !reflect.DeepEqual(got.ExtrasLabels, want) {
			t.Errorf("ExtrasLabels = %v, want %v", got.ExtrasLabels, want)
		}
	})

	t.Run("unknown extras ignored", func(t *testing.T) {
		got := ComputeQuote(QuoteInput{Extras: []Extra{Extra("hot-tub"), ExtraUnknown}})
		if got.ExtrasCost != 0 {
			t.Errorf("ExtrasCost = %v, want 0", got.ExtrasCost)
		}
		if got.ExtrasLabels == nil || len(got.ExtrasLabels) != 0 {
			t.Errorf("ExtrasLabels = %#v, want empty non-nil slice", got.ExtrasLabels)
		}
	})
}

func TestComputeQuote_Idempotent(t *testing.T) {
	in := QuoteInput{
		Name: "Sam", Email: "sam@example.com", Area: 612.5,
		Service: ServiceSuite, Finish: FinishMid,
		Extras: []Extra{ExtraKitchenette, ExtraSeparateEntry}, Notes: "Walk-out",
	}
	first := ComputeQuote(in)
	second := ComputeQuote(in)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("results differ:\n%+v\n%+v", first, second)
	}
	if first.Name != "Sam" || first.Email != "sam@example.com" || first.Notes != "Walk-out" {
		t.Errorf("client details not carried through: %+v", first)
	}
}

func TestComputeQuote_DoesNotMutateInput(t *testing.T) {
	extras := []Extra{ExtraBathroom, ExtraBathroom}
	ComputeQuote(QuoteInput{Extras: extras})
	if len(extras) != 2 || extras[1] != ExtraBathroom {
		t.Errorf("input extras modified: %v", extras)
	}
}

func TestParseEnums(t *testing.T) {
	if got := ParseServiceType("kitchen"); got != ServiceKitchen {
		t.Errorf("ParseServiceType(kitchen) = %q", got)
	}
	if got := ParseServiceType("Kitchen "); got != ServiceUnset {
		t.Errorf("ParseServiceType is exact-match, got %q", got)
	}
	if got := ParseFinishLevel(""); got != FinishStandard {
		t.Errorf("ParseFinishLevel(\"\") = %q, want standard", got)
	}
	if got := ParseFinishLevel("premium"); got != FinishPremium {
		t.Errorf("ParseFinishLevel(premium) = %q", got)
	}
	if got := ParseExtra("separate-entry"); got != ExtraSeparateEntry {
		t.Errorf("ParseExtra(separate-entry) = %q", got)
	}
	if got := ParseExtra("pool"); got != ExtraUnknown {
		t.Errorf("ParseExtra(pool) = %q, want unknown", got)
	}
}
