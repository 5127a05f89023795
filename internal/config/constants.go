package config

// Fetcher Defaults
const (
	DefaultFetcherTimeoutSecs     = 10
	DefaultFetcherUserAgent       = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
	DefaultFetcherFollowRedirects = true
	DefaultFetcherMaxRedirects    = 10
	DefaultFetcherMaxContentSize  = 10 * 1024 * 1024 // 10MB per response body
)

// Aggregator Defaults
const (
	DefaultAggregatorMaxWorkers = 4
)

// Storage Defaults
const (
	DefaultStorageOutputFile = "ip.txt"
)

// Log Defaults
const (
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "console"
	DefaultLogFile       = ""
	DefaultMaxLogSizeMB  = 100
	DefaultMaxLogBackups = 3
)

// Scheduler Defaults
const (
	DefaultSchedulerRefreshIntervalMinutes = 60
)

// DefaultSourceURLs are the pages scanned when no config file overrides them.
var DefaultSourceURLs = []string{
	"https://ip.164746.xyz",
	"https://cf.090227.xyz",
	"https://stock.hostmonit.com/CloudFlareYes",
	"https://www.wetest.vip/page/cloudflare/address_v4.html",
	"https://api.uouin.com/cloudflare.html",
}
