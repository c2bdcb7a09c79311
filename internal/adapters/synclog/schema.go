package synclog

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version int        `toml:"version"`
	LastRun *runSchema `toml:"last_run,omitempty"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported sync state schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type runSchema struct {
	StartedAt  string          `toml:"started_at"`
	FinishedAt string          `toml:"finished_at"`
	Processed  int             `toml:"processed"`
	Failures   []failureSchema `toml:"failures,omitempty"`
}

type failureSchema struct {
	BillingID string `toml:"billing_id"`
	Error     string `toml:"error"`
}
