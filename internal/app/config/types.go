package config

type (
	InternalConfig struct {
		App         App
		JWT         JWT
		Media       Media
		Translation Translation
	}

	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		SMTP     SMTP
		RabbitMQ RabbitMQ
		Minio    Minio
		Logger   Logger
	}

	App struct {
		Env                                string
		Port                               string
		Version                            string
		Address                            string
		Timezone                           string
		EndpointPrefix                     string
		ResetPasswordUrl                   string
		MailerEmailSender                  string
		RabbitMQMailerQueue                string
		MaxRequests                        int
		ShutdownTimeout                    int
		MaxTimeRequestsPerSeconds          int
		RequestBodyLimitInMegabyte         int
		ForgotPasswordTokenExpTimeInMinute int
	}

	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}

	Redis struct {
		Host     string
		Port     string
		Password string
	}

	SMTP struct {
		Host        string
		Username    string
		Password    string
		EmailSender string
		Port        int
	}

	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}

	Minio struct {
		Port       string
		Host       string
		Username   string
		Password   string
		BucketName string
		UseSSL     bool
		PublicUrl  string
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}

	Media struct {
		Driver                 string
		LocalDir               string
		LocalBaseUrl           string
		ImageMaxUploadSizeInMB int64
		VideoMaxUploadSizeInMB int64
	}

	Translation struct {
		BaseUrl        string
		TimeoutSeconds int
	}

	JWT struct {
		Secret        string
		ExpTimeInHour int
	}
)
