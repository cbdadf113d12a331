package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/viejosabroso/restaurant-orders/models"
)

// SettingsPatch is a partial branding update. Nil fields are stripped before
// the merge-write, matching the gateway's no-placeholder rule.
type SettingsPatch struct {
	HeaderTitle        *string `json:"headerTitle"`
	HeaderSubtitle     *string `json:"headerSubtitle"`
	HeaderIcon         *string `json:"headerIcon"`
	HeaderIconFileName *string `json:"headerIconFileName"`
	PageTitle          *string `json:"pageTitle"`
	PageDescription    *string `json:"pageDescription"`
	OGTitle            *string `json:"ogTitle"`
	OGDescription      *string `json:"ogDescription"`
	OGImage            *string `json:"ogImage"`
	OGURL              *string `json:"ogUrl"`
	Favicon            *string `json:"favicon"`
	WebClip            *string `json:"webClip"`
	ThemeColor         *string `json:"themeColor"`
}

// GetSettings reads the singleton branding document. found is false when no
// admin has ever saved one; callers overlay the defaults in that case.
func (s *Store) GetSettings() (settings models.AppSettings, found bool, err error) {
	if err := s.db.First(&settings, "id = ?", models.SettingsID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.AppSettings{}, false, nil
		}
		return models.AppSettings{}, false, unavailable(err)
	}
	return settings, true, nil
}

// UpdateSettings merge-writes the provided fields into the singleton
// document, creating it from the defaults on first save.
func (s *Store) UpdateSettings(patch SettingsPatch) error {
	current, found, err := s.GetSettings()
	if err != nil {
		return err
	}
	if !found {
		current = models.DefaultSettings()
	}
	applySettingsPatch(&current, patch)
	current.ID = models.SettingsID
	if err := s.db.Save(&current).Error; err != nil {
		return unavailable(err)
	}
	return nil
}

func applySettingsPatch(settings *models.AppSettings, patch SettingsPatch) {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&settings.HeaderTitle, patch.HeaderTitle)
	set(&settings.HeaderSubtitle, patch.HeaderSubtitle)
	set(&settings.HeaderIcon, patch.HeaderIcon)
	set(&settings.HeaderIconFileName, patch.HeaderIconFileName)
	set(&settings.PageTitle, patch.PageTitle)
	set(&settings.PageDescription, patch.PageDescription)
	set(&settings.OGTitle, patch.OGTitle)
	set(&settings.OGDescription, patch.OGDescription)
	set(&settings.OGImage, patch.OGImage)
	set(&settings.OGURL, patch.OGURL)
	set(&settings.Favicon, patch.Favicon)
	set(&settings.WebClip, patch.WebClip)
	set(&settings.ThemeColor, patch.ThemeColor)
}
