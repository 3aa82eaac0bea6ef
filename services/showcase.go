package services

import "strings"

// CardKind separates service cards from project cards.
type CardKind string

const (
	CardService CardKind = "service"
	CardProject CardKind = "project"
)

// Placeholder text for cards with missing content.
const (
	CardTitleFallback       = "Details"
	CardBodyFallback        = "More information about this item will be added soon."
	CardProjectTagFallback  = "Project details"
	CardServiceTagFallback  = "Service details"
	CardImageAltFallback    = "Image"
	CardImageMissingCaption = "Image coming soon"
	CardImageMissingHint    = "Add your own project photo in the final site."
)

// ShowcaseCard is a service or project card as stored.
type ShowcaseCard struct {
	ID          string
	Kind        CardKind
	Title       string
	Tag         string
	Description string
	Pills       []string
	Image       string
}

// CardModal is the content shown in the info modal for a card.
type CardModal struct {
	Title    string
	Tag      string
	Body     string
	Pills    []string
	ImageSrc string
	ImageAlt string
}

// HasImage reports whether the modal shows a picture or the placeholder.
func (m CardModal) HasImage() bool {
	return m.ImageSrc != ""
}

// BuildCardModal fills the modal from a card, substituting placeholder text for
// any missing field.
func BuildCardModal(card ShowcaseCard) CardModal {
	m := CardModal{
		Title:    strings.TrimSpace(card.Title),
		Tag:      strings.TrimSpace(card.Tag),
		Body:     strings.TrimSpace(card.Description),
		Pills:    card.Pills,
		ImageSrc: strings.TrimSpace(card.Image),
	}

	m.ImageAlt = m.Title
	if m.Title == "" {
		m.Title = CardTitleFallback
		m.ImageAlt = CardImageAltFallback
	}
	if m.Tag == "" {
		if card.Kind == CardProject {
			m.Tag = CardProjectTagFallback
		} else {
			m.Tag = CardServiceTagFallback
		}
	}
	if m.Body == "" {
		m.Body = CardBodyFallback
	}
	return m
}

// ParsePills splits a comma-separated pill list, dropping blanks.
func ParsePills(s string) []string {
	var pills []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			pills = append(pills, p)
		}
	}
	return pills
}
