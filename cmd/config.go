package cmd

// Config carries all environment-provided settings.
type Config struct {
	HTTPPort          string
	DBHost            string
	DBPort            string
	DBUser            string
	DBPassword        string
	DBName            string
	DBSslMode         string
	RedisAddr         string
	RedisPassword     string
	SessionTTL        string
	DosingServiceURL  string
	DosingAccessToken string
}
