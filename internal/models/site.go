package models

// SiteInfo is storefront display data served verbatim from config; it never
// touches the database.
type SiteInfo struct {
	Name         string   `json:"name"`
	Tagline      string   `json:"tagline"`
	Description  string   `json:"description"`
	Logo         string   `json:"logo"`
	Address      string   `json:"address"`
	Phone        string   `json:"phone"`
	Email        string   `json:"email"`
	Whatsapp     string   `json:"whatsapp"`
	OpeningHours string   `mapstructure:"opening_hours" json:"opening_hours"`
	WorkingDays  []string `mapstructure:"working_days" json:"working_days"`
	MapLink      string   `mapstructure:"map_link" json:"map_link"`
	Socials      Socials  `json:"socials"`
}

type Socials struct {
	Instagram string `json:"instagram"`
	Linkedin  string `json:"linkedin"`
}
