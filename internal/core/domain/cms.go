package domain

import (
	"errors"
	"time"
)

var ErrCMSNotFound = errors.New("cms document not found")

// TourDate is a single entry in the touring section.
type TourDate struct {
	Date      string `json:"date"`
	City      string `json:"city"`
	Venue     string `json:"venue"`
	TicketURL string `json:"ticketUrl,omitempty"`
	SoldOut   bool   `json:"soldOut"`
}

// MerchItem is a single entry in the merchandise section.
type MerchItem struct {
	Name      string `json:"name"`
	Price     string `json:"price"`
	Image     string `json:"image,omitempty"`
	Available bool   `json:"available"`
}

// PressItem is a newsletter press mention.
type PressItem struct {
	Title  string `json:"title"`
	Source string `json:"source"`
	URL    string `json:"url,omitempty"`
	Date   string `json:"date,omitempty"`
}

// VideoEmbed is an embedded newsletter video.
type VideoEmbed struct {
	Title     string `json:"title"`
	YoutubeID string `json:"youtubeId"`
}

// Newsletter groups press items and video embeds.
type Newsletter struct {
	Press  []PressItem  `json:"press"`
	Videos []VideoEmbed `json:"videos"`
}

// CMSDocument is the single editable marketing-content document. Exactly one
// live document exists; writes replace it wholesale and stamp Version and
// UpdatedAt server-side.
type CMSDocument struct {
	Version    int         `json:"version"`
	UpdatedAt  time.Time   `json:"updatedAt"`
	Tour       []TourDate  `json:"tour"`
	Merch      []MerchItem `json:"merch"`
	Newsletter Newsletter  `json:"newsletter"`
}

// DefaultCMS returns the seed document used on first read and on reset.
func DefaultCMS() *CMSDocument {
	return &CMSDocument{
		Version: 1,
		Tour: []TourDate{
			{Date: "2026-10-03", City: "Lagos", Venue: "The Yard Open Air"},
			{Date: "2026-10-17", City: "London", Venue: "Electric Brixton"},
			{Date: "2026-11-01", City: "Toronto", Venue: "History"},
		},
		Merch: []MerchItem{
			{Name: "Yard Tour Tee", Price: "35.00", Available: true},
			{Name: "Descendant Hoodie", Price: "70.00", Available: true},
			{Name: "Angel Cap", Price: "28.00", Available: false},
		},
		Newsletter: Newsletter{
			Press: []PressItem{
				{Title: "Inside The Yard's cult following", Source: "The Wire"},
			},
			Videos: []VideoEmbed{
				{Title: "The Yard Live Session", YoutubeID: "dQw4w9WgXcQ"},
			},
		},
	}
}
