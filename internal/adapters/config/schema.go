package config

// LattFile represents the structure of the latt.yaml configuration file.
type LattFile struct {
	Version          string   `yaml:"version"`
	Roots            []string `yaml:"roots"`
	Extensions       []string `yaml:"extensions"`
	DebounceWindowMS uint32   `yaml:"debounce_window_ms"`
	CacheDir         string   `yaml:"cache_dir"`
}
