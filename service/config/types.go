package config

import "github.com/nokutoka/nokubuild/service/substitute"

// DefaultPath is the config file looked up in the working directory.
const DefaultPath = ".nokubuild.yaml"

// Target is one external build command and the folder it produces.
type Target struct {
	Name      string `yaml:"name"`
	Command   string `yaml:"command"`
	OutputDir string `yaml:"output_dir"`
}

// Config describes the project being released.
type Config struct {
	AppName       string            `yaml:"app_name"`
	Manifest      string            `yaml:"manifest"`
	VersionFile   string            `yaml:"version_file"`
	Substitutions []substitute.Rule `yaml:"substitutions"`
	Targets       []Target          `yaml:"targets"`
	KillProcesses []string          `yaml:"kill_processes"`
}
