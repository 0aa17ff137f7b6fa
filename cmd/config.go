package cmd

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	KafkaHost        string
	KafkaEventsTopic string

	RedisHost     string
	RedisPassword string

	GoogleMapsAPIKey string

	ServiceCenterLat   float64
	ServiceCenterLng   float64
	ServiceRadiusMiles float64
	AverageSpeedMph    float64
}
