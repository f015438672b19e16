package cmd

type Config struct {
	HTTPPort       string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBSslMode      string
	EventBusMode   string
	RedisAddr      string
	RedisPassword  string
	OperatorIDs    string
	StaleThreshold string
}
