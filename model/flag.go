package model

type Flags struct {
	ConfigFile string

	// AWS-specific flags
	Region  string
	Profile string

	// Output
	Send    bool
	OutFile string
	Quiet   bool
}
