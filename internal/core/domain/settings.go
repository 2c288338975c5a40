package domain

// Settings holds persisted user preferences.
type Settings struct {
	// Backend is the directory implementation used when none is chosen
	// on the command line.
	Backend Backend

	// SampleDir is where the sample phone books live.
	SampleDir string
}

// DefaultSettings returns the settings used before anything is configured.
func DefaultSettings() *Settings {
	return &Settings{
		Backend:   DefaultBackend,
		SampleDir: ".",
	}
}
