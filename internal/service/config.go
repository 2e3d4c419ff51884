package service

import (
	"log/slog"

	"github.com/mmcdole/muse/internal/domain"
	"github.com/mmcdole/muse/internal/state"
)

// ConfigService edits the backend-owned configuration. Edits are applied to
// the local mirror and sent in full; the backend echoes a config_state.
type ConfigService struct {
	session   *state.Session
	requester domain.Requester
	logger    *slog.Logger
}

// NewConfigService creates a new config service
func NewConfigService(session *state.Session, requester domain.Requester, logger *slog.Logger) *ConfigService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ConfigService{session: session, requester: requester, logger: logger}
}

// Get asks the backend to push its configuration
func (s *ConfigService) Get() { s.requester.Send(domain.GetConfig{}) }

// Update applies fn to the mirror and sends the result
func (s *ConfigService) Update(fn func(*domain.ConfigState)) {
	fn(&s.session.Config)
	s.requester.Send(domain.SetConfig{Config: s.session.Config})
}

// SetTheme switches the theme
func (s *ConfigService) SetTheme(theme domain.Theme) {
	s.Update(func(c *domain.ConfigState) { c.Theme = theme })
}

// SetStartupView changes the view shown on the next start
func (s *ConfigService) SetStartupView(view domain.View) {
	s.Update(func(c *domain.ConfigState) { c.StartupView = view })
}

// SetMediaPath changes the library root
func (s *ConfigService) SetMediaPath(path string) {
	s.Update(func(c *domain.ConfigState) { c.MediaPath = path })
}

// ResetCustomColors replaces the custom palette with a base theme's colors
func (s *ConfigService) ResetCustomColors(dark bool) {
	colors := domain.LightColors()
	if dark {
		colors = domain.DarkColors()
	}
	s.Update(func(c *domain.ConfigState) { c.CustomColors = colors })
	s.session.CustomColorsBackup = colors
}

// RevertCustomColors restores the palette held before editing began
func (s *ConfigService) RevertCustomColors() {
	s.session.Config.CustomColors = s.session.CustomColorsBackup
}

// CompleteSetup clears the first-run flag
func (s *ConfigService) CompleteSetup() {
	s.logger.Info("first-run setup complete")
	s.Update(func(c *domain.ConfigState) { c.IsNew = false })
}
