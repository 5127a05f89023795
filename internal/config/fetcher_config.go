package config

// FetcherConfig defines configuration for fetching source pages
type FetcherConfig struct {
	TimeoutSecs     int    `json:"timeout_secs,omitempty" yaml:"timeout_secs,omitempty" validate:"gt=0"`
	UserAgent       string `json:"user_agent,omitempty" yaml:"user_agent,omitempty"`
	FollowRedirects bool   `json:"follow_redirects,omitempty" yaml:"follow_redirects,omitempty"`
	MaxRedirects    int    `json:"max_redirects,omitempty" yaml:"max_redirects,omitempty" validate:"omitempty,gte=0"`
	MaxContentSize  int    `json:"max_content_size,omitempty" yaml:"max_content_size,omitempty" validate:"omitempty,gt=0"`
}

// NewDefaultFetcherConfig creates default fetcher configuration
func NewDefaultFetcherConfig() FetcherConfig {
	return FetcherConfig{
		TimeoutSecs:     DefaultFetcherTimeoutSecs,
		UserAgent:       DefaultFetcherUserAgent,
		FollowRedirects: DefaultFetcherFollowRedirects,
		MaxRedirects:    DefaultFetcherMaxRedirects,
		MaxContentSize:  DefaultFetcherMaxContentSize,
	}
}
