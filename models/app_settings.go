package models

// AppSettings is the singleton branding document. One row, fixed ID.
type AppSettings struct {
	ID                 string `gorm:"type:varchar(16);primaryKey" json:"-"`
	HeaderTitle        string `gorm:"type:varchar(255)" json:"headerTitle"`
	HeaderSubtitle     string `gorm:"type:varchar(255)" json:"headerSubtitle"`
	HeaderIcon         string `gorm:"type:varchar(512)" json:"headerIcon"`
	HeaderIconFileName string `gorm:"type:varchar(512)" json:"headerIconFileName,omitempty"`
	PageTitle          string `gorm:"type:varchar(255)" json:"pageTitle"`
	PageDescription    string `gorm:"type:text" json:"pageDescription"`
	OGTitle            string `gorm:"type:varchar(255)" json:"ogTitle"`
	OGDescription      string `gorm:"type:text" json:"ogDescription"`
	OGImage            string `gorm:"type:varchar(512)" json:"ogImage"`
	OGURL              string `gorm:"type:varchar(512)" json:"ogUrl"`
	Favicon            string `gorm:"type:varchar(512)" json:"favicon"`
	WebClip            string `gorm:"type:varchar(512)" json:"webClip"`
	ThemeColor         string `gorm:"type:varchar(32)" json:"themeColor"`
}

const SettingsID = "main"

// DefaultSettings returns the compiled-in branding used until an admin saves
// an override.
func DefaultSettings() AppSettings {
	return AppSettings{
		ID:              SettingsID,
		HeaderTitle:     "Viejo Sabroso",
		HeaderSubtitle:  "Summerween 25",
		HeaderIcon:      "🍽️",
		PageTitle:       "Viejo Sabroso - Auténtica Comida Mexicana",
		PageDescription: "Disfruta de la auténtica comida mexicana en Viejo Sabroso.",
		OGTitle:         "Viejo Sabroso - Auténtica Comida Mexicana",
		OGDescription:   "Disfruta de la auténtica comida mexicana en Viejo Sabroso.",
		OGImage:         "https://picsum.photos/1200/630?random=restaurant",
		Favicon:         "/favicon.ico",
		WebClip:         "/apple-touch-icon.png",
		ThemeColor:      "#FF7518",
	}
}
