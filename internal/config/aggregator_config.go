package config

// AggregatorConfig defines configuration for the concurrent refresh run
type AggregatorConfig struct {
	MaxWorkers int `json:"max_workers,omitempty" yaml:"max_workers,omitempty" validate:"gt=0"`
}

// NewDefaultAggregatorConfig creates default aggregator configuration
func NewDefaultAggregatorConfig() AggregatorConfig {
	return AggregatorConfig{
		MaxWorkers: DefaultAggregatorMaxWorkers,
	}
}
