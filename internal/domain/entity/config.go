package entity

// Config is the user state persisted between runs: UI language and the
// last window size.
type Config struct {
	Language Language
	Width    int
	Height   int
}

// Geometry returns the stored window size.
func (c Config) Geometry() (width, height int) {
	return c.Width, c.Height
}

// ConfigPatch describes a partial update of Config.
// Nil fields keep their stored value.
type ConfigPatch struct {
	Language *Language
	Width    *int
	Height   *int
}

// LanguagePatch updates only the language.
func LanguagePatch(lang Language) ConfigPatch {
	return ConfigPatch{Language: &lang}
}

// GeometryPatch updates only the window size.
func GeometryPatch(width, height int) ConfigPatch {
	return ConfigPatch{Width: &width, Height: &height}
}

// Empty reports whether the patch changes nothing.
func (p ConfigPatch) Empty() bool {
	return p.Language == nil && p.Width == nil && p.Height == nil
}

// Apply returns base with the patch's fields applied.
// Non-positive sizes and unsupported languages are ignored.
func (p ConfigPatch) Apply(base Config) Config {
	if p.Language != nil && p.Language.Valid() {
		base.Language = *p.Language
	}
	if p.Width != nil && *p.Width > 0 {
		base.Width = *p.Width
	}
	if p.Height != nil && *p.Height > 0 {
		base.Height = *p.Height
	}
	return base
}
