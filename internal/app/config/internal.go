package config

type InternalConfig struct {
	App      App
	Tidepool Tidepool
	Auth     Auth
	Session  Session
	Report   Report
	Audit    Audit
}

type App struct {
	Env                       string
	Port                      string
	Version                   string
	Timezone                  string
	CorsAllowedOrigins        []string
	MaxRequests               int
	ShutdownTimeout           int
	RequestTimeoutInSeconds   int
	MaxTimeRequestsPerSeconds int
}

type Tidepool struct {
	BaseUrl              string
	ServerName           string
	ServerSecret         string
	TokenTTLInMinutes    int
	MaxRequestsPerSecond int
	HTTPTimeoutInSeconds int
	PageSize             int
}

type Auth struct {
	AssertionHeader string
	DevBypass       bool
	DevEmail        string
	EditorGroups    []string
}

type Session struct {
	Secret           string
	MaxAgeInDays     int
	SecureCookie     bool
	RecentItemsLimit int
}

type Report struct {
	ArchiveEnabled            bool
	BucketName                string
	RetentionInDays           int
	SweeperCronSpec           string
	PresignedUrlExpiryInHours int
	MaxPerMinute              int
}

type Audit struct {
	Queue string
}
