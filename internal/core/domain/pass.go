package domain

import (
	"errors"
	"time"
)

// Category is the closed two-value classification of a pass holder,
// derived from the binary gender selection on the signup form.
type Category string

const (
	CategoryAngel      Category = "angel"
	CategoryDescendant Category = "descendant"
)

var ErrPassNotFound = errors.New("pass not found")
var ErrInvalidPass = errors.New("invalid pass data")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUploadTooLarge = errors.New("upload exceeds size limit")
var ErrUnsupportedFileType = errors.New("unsupported file type")

// CategoryFromGender maps the form's gender selection to a Category.
func CategoryFromGender(gender string) (Category, error) {
	switch gender {
	case "female":
		return CategoryAngel, nil
	case "male":
		return CategoryDescendant, nil
	default:
		return "", ErrInvalidPass
	}
}

// TitleLines returns the two-line card heading for the category.
func (c Category) TitleLines() [2]string {
	if c == CategoryAngel {
		return [2]string{"THE YARD", "ANGEL PASS"}
	}
	return [2]string{"THE YARD", "DESCENDANT PASS"}
}

// StatusLabel returns the status row value shown on the card.
func (c Category) StatusLabel() string {
	if c == CategoryAngel {
		return "ANGEL OF THE YARD"
	}
	return "DESCENDANT OF THE YARD"
}

// Pass is the fan identity record. Exactly one pass exists per AnonID;
// regeneration overwrites, never appends.
type Pass struct {
	ID            string    `json:"id"`
	AnonID        string    `json:"anonId"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Category      Category  `json:"category"`
	YearJoined    int       `json:"yearJoined"`
	CreatedAt     time.Time `json:"createdAt"`
	// Photo is only carried through creation for rendering; it is not persisted.
	Photo []byte `json:"-"`
	// ExportedImage is the card PNG produced once at creation and stored
	// verbatim. Later renderer changes never touch already-issued cards.
	ExportedImage []byte `json:"exportedImage,omitempty"`
	IP            string `json:"ip,omitempty"`
	UserAgent     string `json:"userAgent,omitempty"`
}
