package config

// StorageConfig defines where the refreshed address list is persisted
type StorageConfig struct {
	OutputFile string `json:"output_file,omitempty" yaml:"output_file,omitempty" validate:"omitempty,filepath"`
}

// NewDefaultStorageConfig creates default storage configuration
func NewDefaultStorageConfig() StorageConfig {
	return StorageConfig{
		OutputFile: DefaultStorageOutputFile,
	}
}
