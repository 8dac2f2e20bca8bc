package config

type (
	DriverConfig struct {
		PostgresDB PostgresDB
		Redis      Redis
		Logger     Logger
		RabbitMQ   RabbitMQ
		SMTP       SMTP
	}
	PostgresDB struct {
		Host                     string
		Port                     string
		Username                 string
		Password                 string
		DBName                   string
		SSLMode                  string
		MaxOpenConns             int
		MaxIdleConns             int
		ConnMaxLifetimeInMinutes int
	}
	Redis struct {
		Host     string
		Port     string
		Password string
		DB       int
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
		Prefetch int
	}
	SMTP struct {
		Host        string
		Port        int
		Username    string
		Password    string
		EmailSender string
	}
)
