package services

import (
	"net/url"
	"reflect"
	"testing"
)

func TestParseArea(t *testing.T) {
	tests := []struct {
		input  string
		expect float64
	}{
		{"500", 500},
		{" 612.5 ", 612.5},
		{"450 sq ft", 450},
		{".5", 0.5},
		{"1e3", 1000},
		{"", 0},
		{"abc", 0},
		{"-200", 0},
		{"1e400", 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseArea(tt.input); got != tt.expect {
				t.Errorf("ParseArea(%q) = %v, want %v", tt.input, got, tt.expect)
			}
		})
	}
}

func TestQuoteInputFromForm(t *testing.T) {
	form := url.Values{
		FieldName:        {"  Gagan Dhillon "},
		FieldEmail:       {"gagan@example.com"},
		FieldArea:        {"700"},
		FieldService:     {"suite"},
		FieldFinishLevel: {"mid"},
		FieldExtras:      {"separate-entry", "hot-tub", "bathroom"},
		FieldNotes:       {"\nWalk-out basement\n"},
	}

	got := QuoteInputFromForm(form)
	want := QuoteInput{
		Name:    "Gagan Dhillon",
		Email:   "gagan@example.com",
		Area:    700,
		Service: ServiceSuite,
		Finish:  FinishMid,
		Extras:  []Extra{ExtraSeparateEntry, ExtraBathroom},
		Notes:   "Walk-out basement",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("QuoteInputFromForm =\n%+v\nwant\n%+v", got, want)
	}
}

func TestQuoteInputFromForm_Empty(t *testing.T) {
	got := QuoteInputFromForm(url.Values{})
	if got.Service != ServiceUnset || got.Finish != FinishStandard || got.Area != 0 || len(got.Extras) != 0 {
		t.Errorf("empty form = %+v", got)
	}
}

func TestQuoteInput_FormValuesRoundTrip(t *testing.T) {
	in := QuoteInput{
		Name: "Sam", Email: "sam@example.com", Area: 88.25,
		Service: ServiceBathroom, Finish: FinishPremium,
		Extras: []Extra{ExtraExterior, ExtraKitchenette}, Notes: "Heated floors",
	}
	if got := QuoteInputFromForm(in.FormValues()); !reflect.DeepEqual(got, in) {
		t.Errorf("round trip =\n%+v\nwant\n%+v", got, in)
	}
}
