package config

// Model holds settings read from configuration files. A nil field means the
// setting was not present in any file.
type Model struct {
	InPlace   *bool
	Verbose   *bool
	LogLevel  *string
	LogFormat *string

	// Sources lists the files that contributed to the model, in load order.
	Sources []string
}

// Merge overlays every field set in other onto m.
func (m *Model) Merge(other *Model) {
	if other == nil {
		return
	}
	if other.InPlace != nil {
		m.InPlace = other.InPlace
	}
	if other.Verbose != nil {
		m.Verbose = other.Verbose
	}
	if other.LogLevel != nil {
		m.LogLevel = other.LogLevel
	}
	if other.LogFormat != nil {
		m.LogFormat = other.LogFormat
	}
	m.Sources = append(m.Sources, other.Sources...)
}
