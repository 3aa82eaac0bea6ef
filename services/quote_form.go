package services

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

// Form field names used by the quote form.
const (
	FieldName        = "name"
	FieldEmail       = "email"
	FieldArea        = "area"
	FieldService     = "service"
	FieldFinishLevel = "finish-level"
	FieldExtras      = "extras"
	FieldNotes       = "notes"
)

var leadingNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// QuoteInputFromForm reads a QuoteInput from submitted form values. Extras keep
// the order in which they were submitted.
func QuoteInputFromForm(form url.Values) QuoteInput {
	in := QuoteInput{
		Name:    strings.TrimSpace(form.Get(FieldName)),
		Email:   strings.TrimSpace(form.Get(FieldEmail)),
		Area:    ParseArea(form.Get(FieldArea)),
		Service: ParseServiceType(form.Get(FieldService)),
		Finish:  ParseFinishLevel(form.Get(FieldFinishLevel)),
		Notes:   strings.TrimSpace(form.Get(FieldNotes)),
	}
	for _, v := range form[FieldExtras] {
		if ex := ParseExtra(v); ex != ExtraUnknown {
			in.Extras = append(in.Extras, ex)
		}
	}
	return in
}

// ParseArea parses the numeric prefix of s ("450 sq ft" -> 450). Anything
// without a usable number, and any negative or non-finite value, yields 0.
func ParseArea(s string) float64 {
	m := leadingNumber.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0
	}
	return sanitizeArea(v)
}

// FormValues is the inverse of QuoteInputFromForm, used when a quote has to be
// carried through a link (the print view).
func (in QuoteInput) FormValues() url.Values {
	v := url.Values{}
	v.Set(FieldName, in.Name)
	v.Set(FieldEmail, in.Email)
	v.Set(FieldArea, strconv.FormatFloat(in.Area, 'f', -1, 64))
	v.Set(FieldService, string(in.Service))
	v.Set(FieldFinishLevel, string(in.Finish))
	for _, ex := range in.Extras {
		v.Add(FieldExtras, string(ex))
	}
	v.Set(FieldNotes, in.Notes)
	return v
}
