package models

// ClubTheme holds the club branding record. Color extraction from the crest
// image happens outside this core; the extracted palette is persisted here.
type ClubTheme struct {
	ClubName       string `json:"club_name"`
	PrimaryColor   string `json:"primary_color"`
	SecondaryColor string `json:"secondary_color"`
	CrestURL       string `json:"crest_url,omitempty"`
}
