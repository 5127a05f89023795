package config

// SchedulerConfig defines the refresh interval for automated mode
type SchedulerConfig struct {
	RefreshIntervalMinutes int `json:"refresh_interval_minutes,omitempty" yaml:"refresh_interval_minutes,omitempty" validate:"gt=0"`
}

// NewDefaultSchedulerConfig creates default scheduler configuration
func NewDefaultSchedulerConfig() SchedulerConfig {
	return SchedulerConfig{
		RefreshIntervalMinutes: DefaultSchedulerRefreshIntervalMinutes,
	}
}
