package config

type Flags struct {
	ConfigFile   string
	OS           []string
	Arch         []string
	HubTag       string
	Verbose      bool
	Time         bool
	NoBuild      bool
	NoGenerate   bool
	NoCache      bool
	Delete       bool
	DryRun       bool
	NoColor      bool
	PrintVersion bool
}
