package content

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Portfolio item categories.
var Categories = []string{"web", "app", "image", "video", "design", "other"}

// IsCategory reports whether c is a known portfolio category.
func IsCategory(c string) bool {
	for _, k := range Categories {
		if k == c {
			return true
		}
	}
	return false
}

// General holds the page language and document title.
type General struct {
	Title string `json:"title"`
	Lang  string `json:"lang"`
}

// MenuItem is one navigation entry.
type MenuItem struct {
	Text string `json:"text"`
	Link string `json:"link"`
}

// Header holds the logo and navigation menu.
type Header struct {
	LogoText  string     `json:"logoText"`
	LogoImage string     `json:"logoImage,omitempty"`
	MenuItems []MenuItem `json:"menuItems"`
}

// Hero is the landing section. Title may carry admin-authored markup
// (accent spans) and is rendered unescaped.
type Hero struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Button1Text string `json:"button1_text"`
	Button1Link string `json:"button1_link"`
	Button2Text string `json:"button2_text"`
	Button2Link string `json:"button2_link"`
}

// About holds the two about-section paragraphs.
type About struct {
	Text1 string `json:"text1"`
	Text2 string `json:"text2"`
}

// Technology is an ordered technology reference on a portfolio item.
type Technology struct {
	Name string `json:"name"`
	Icon string `json:"icon,omitempty"`
}

// PortfolioItem is one project card. Status holds the raw catalog id;
// resolution happens at display time so a deleted custom status never
// corrupts the stored item.
type PortfolioItem struct {
	Title           string       `json:"title"`
	Category        string       `json:"category"`
	Description     string       `json:"description"`
	LongDescription string       `json:"longDescription,omitempty"`
	Image           string       `json:"image,omitempty"`
	Images          []string     `json:"images,omitempty"`
	Tags            []string     `json:"tags,omitempty"`
	Technologies    []Technology `json:"technologies,omitempty"`
	Link            string       `json:"link,omitempty"`
	Status          string       `json:"status,omitempty"`
}

// MainImage returns the primary display image: first of Images, else Image.
func (p *PortfolioItem) MainImage() string {
	if len(p.Images) > 0 {
		return p.Images[0]
	}
	return p.Image
}

// Portfolio is the portfolio collection document.
type Portfolio struct {
	Items []PortfolioItem `json:"items"`
}

// FutureItem is one planned project on the timeline. Date is a free-text
// label ("Q2 2026"), not a parsed date.
type FutureItem struct {
	Date        string `json:"date"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Future is the future-plans collection document.
type Future struct {
	Items []FutureItem `json:"items"`
}

// Contact holds the contact details.
type Contact struct {
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// Footer holds the copyright line.
type Footer struct {
	Copyright string `json:"copyright"`
}

// Feature flag states.
const (
	FeatureEnabled     FeatureState = "true"
	FeatureDisabled    FeatureState = "false"
	FeatureMaintenance FeatureState = "maintenance"
	FeatureComingSoon  FeatureState = "coming-soon"
)

// FeatureState is the tri-state visibility flag for a public section:
// JSON true, false, "maintenance" or "coming-soon".
type FeatureState string

// UnmarshalJSON accepts a JSON bool or one of the known state strings.
func (f *FeatureState) UnmarshalJSON(data []byte) error {
	switch {
	case bytes.Equal(data, []byte("true")):
		*f = FeatureEnabled
		return nil
	case bytes.Equal(data, []byte("false")):
		*f = FeatureDisabled
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("content: feature state: %w", err)
	}
	switch FeatureState(s) {
	case FeatureMaintenance, FeatureComingSoon:
		*f = FeatureState(s)
		return nil
	}
	return fmt.Errorf("content: unknown feature state %q", s)
}

// MarshalJSON emits booleans for enabled/disabled and strings otherwise.
func (f FeatureState) MarshalJSON() ([]byte, error) {
	switch f {
	case FeatureEnabled, "":
		return []byte("true"), nil
	case FeatureDisabled:
		return []byte("false"), nil
	}
	return json.Marshal(string(f))
}

// Visible reports whether the section is shown at all. Only an explicit
// false hides a section; maintenance and coming-soon still render with an
// overlay.
func (f FeatureState) Visible() bool {
	return f != FeatureDisabled
}

// Interactive reports whether the section behaves normally.
func (f FeatureState) Interactive() bool {
	return f == FeatureEnabled || f == ""
}

// Features maps section keys to visibility flags. Absent keys read as
// enabled.
type Features map[string]FeatureState

// State returns the flag for key, defaulting to enabled.
func (ff Features) State(key string) FeatureState {
	if s, ok := ff[key]; ok {
		return s
	}
	return FeatureEnabled
}
