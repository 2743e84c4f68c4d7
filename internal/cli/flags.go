package cli

import "ptd/internal/config"

// Flags holds command-line flags
type Flags struct {
	Filter   string
	TestPath string
	Seed     int64
	Methods  bool
	Limit    int
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		Filter:   f.Filter,
		TestPath: f.TestPath,
		Seed:     f.Seed,
		Methods:  f.Methods,
		Limit:    f.Limit,
	}
}
