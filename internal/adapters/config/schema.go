package config

// Riggfile represents the structure of the rigg.yaml configuration file.
type Riggfile struct {
	Version  string                `yaml:"version"`
	ToolsDir string                `yaml:"toolsDir"`
	Packages map[string]PackageDTO `yaml:"packages"`
}

// PackageDTO represents a tool package declaration in the configuration.
type PackageDTO struct {
	Version string `yaml:"version"`
	Scope   string `yaml:"scope"`
}
