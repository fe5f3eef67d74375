package cli

import "shtest/internal/config"

// Flags holds command-line flags
type Flags struct {
	NameFilter string
	Timeout    int
	Quiet      bool
	Summary    bool
	Verbose    bool
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		NameFilter:     f.NameFilter,
		TimeoutSeconds: f.Timeout,
		Quiet:          f.Quiet,
		SummaryOnly:    f.Summary,
		Verbose:        f.Verbose,
	}
}
