package coursecheck

// DefaultThreshold is the minimum similarity score for two texts to match.
const DefaultThreshold = 70

// DefaultModel is the Gemini model used by the ask command.
const DefaultModel = "gemini-2.5-flash"

// Program describes where one catalog comes from and how to read it.
type Program struct {
	Name   string
	Path   string
	Layout Layout
}

// Validate returns an error if the program cannot be imported.
func (p *Program) Validate() error {
	if p.Name == "" {
		return Errorf(EINVALID, "program name required")
	}
	if p.Path == "" {
		return Errorf(EINVALID, "program %q: catalog path required", p.Name)
	}
	if err := p.Layout.Validate(); err != nil {
		return Errorf(EINVALID, "program %q: %s", p.Name, ErrorMessage(err))
	}
	return nil
}

// Config holds the application configuration.
type Config struct {
	// DBPath is the SQLite database holding imported catalogs.
	// Empty means the CLI default.
	DBPath string

	// Threshold is the similarity threshold applied to every comparison.
	Threshold int

	// Model is the Gemini model for the ask command.
	Model string

	// ProgramA is the crediting program; its records carry classifications.
	ProgramA Program

	// ProgramB is the program whose courses are checked for credit.
	ProgramB Program
}

// DefaultConfig returns the configuration for the SIM and FinTech catalog exports.
func DefaultConfig() *Config {
	return &Config{
		Threshold: DefaultThreshold,
		Model:     DefaultModel,
		ProgramA: Program{
			Name: "SIM",
			Path: "sim_courses_clean.csv",
			Layout: Layout{
				Format:               FormatCSV,
				Delimiter:            ";",
				NameColumn:           "event",
				ClassificationColumn: "classification",
				Template:             "{event} ({course_number}, {lecturer}, {classification})",
			},
		},
		ProgramB: Program{
			Name: "FinTech",
			Path: "fintech_courses_clean.csv",
			Layout: Layout{
				Format:     FormatCSV,
				Delimiter:  ";",
				NameColumn: "Name",
				Template:   "{Name} ({Number}, {Lecturer}, {Semester}, {ECTS} ECTS)",
			},
		},
	}
}

// Validate returns an error if the configuration is unusable.
func (c *Config) Validate() error {
	if err := ValidateThreshold(c.Threshold); err != nil {
		return err
	}
	if err := c.ProgramA.Validate(); err != nil {
		return err
	}
	if err := c.ProgramB.Validate(); err != nil {
		return err
	}
	if c.ProgramA.Name == c.ProgramB.Name {
		return Errorf(EINVALID, "programs must have distinct names, both are %q", c.ProgramA.Name)
	}
	return nil
}

// Program returns the configured program for a source.
func (c *Config) Program(source Source) *Program {
	if source == SourceProgramA {
		return &c.ProgramA
	}
	return &c.ProgramB
}

// ValidateThreshold returns an error if t is not a similarity score.
func ValidateThreshold(t int) error {
	if t < 0 || t > 100 {
		return Errorf(EINVALID, "threshold must be between 0 and 100, got %d", t)
	}
	return nil
}
