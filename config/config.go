package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

// Config armazena todas as configurações do serviço de usuários.
type Config struct {
	// Geral
	Port        string
	Environment string

	// Logs
	LogLevel    string
	LogFolder   string
	LogFileName string

	// Banco de Dados (PostgreSQL)
	DatabaseURL string
	DBTimeout   time.Duration

	// Redis (rate limit, cache de usuários e publicação de eventos)
	RedisAddr    string
	UserCacheTTL time.Duration // 0 desliga o cache

	// Segurança
	JWTSecretKey string
	TokenExpiry  time.Duration
	BcryptCost   int

	// Verificação de e-mail
	VerifyEmailTopic  string
	VerifyEmailExpiry time.Duration

	// Rate Limiting
	RateLimitMaxRequests int
	RateLimitPeriod      time.Duration
}

// LoadConfig carrega as configurações a partir das variáveis de ambiente.
// O .env (se existir) já deve ter sido carregado pelo godotenv no main.
func LoadConfig() *Config {
	cfg := &Config{
		// 1. Geral
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENV", "development"),

		// 2. Logs
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFolder:   getEnv("LOG_FOLDER", ""),
		LogFileName: getEnv("LOG_FILE_NAME", "server.log"),

		// 3. Banco de Dados (PostgreSQL)
		// mustGetEnv garante que a aplicação não inicie sem credenciais de DB
		DatabaseURL: mustGetEnv("DATABASE_URL"),
		DBTimeout:   getDurationEnv("DB_TIMEOUT_SEC", 5) * time.Second,

		// 4. Redis
		RedisAddr:    getEnv("REDIS_ADDR", "localhost:6379"),
		UserCacheTTL: getDurationEnv("USER_CACHE_TTL_SEC", 60) * time.Second,

		// 5. Segurança
		JWTSecretKey: mustGetEnv("JWT_SECRET_KEY"),
		TokenExpiry:  getDurationEnv("JWT_EXPIRY_MIN", 60) * time.Minute,
		BcryptCost:   getIntEnv("BCRYPT_COST", 10),

		// 6. Verificação de e-mail
		VerifyEmailTopic:  getEnv("VERIFY_EMAIL_TOPIC", "verify_email"),
		VerifyEmailExpiry: getDurationEnv("VERIFY_EMAIL_EXPIRY_MIN", 2) * time.Minute,

		// 7. Rate Limiting
		RateLimitMaxRequests: getIntEnv("RATE_LIMIT_MAX_REQUESTS", 100),
		RateLimitPeriod:      getDurationEnv("RATE_LIMIT_PERIOD_MIN", 1) * time.Minute,
	}

	return cfg
}

// IsTest reporta se o serviço está rodando em ambiente de testes.
func (c *Config) IsTest() bool {
	return c.Environment == "test"
}

// Funções Helpers (Auxiliares)

// getEnv lê a variável de ambiente ou retorna um valor padrão.
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

// mustGetEnv lê a variável de ambiente, fatal se não estiver presente.
func mustGetEnv(key string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	log.Fatalf("❌ Erro de Configuração: A variável de ambiente %s deve ser definida.", key)
	return ""
}

// getDurationEnv lê uma variável de ambiente numérica e retorna-a como time.Duration (sem unidade).
func getDurationEnv(key string, defaultValue int) time.Duration {
	return time.Duration(getIntEnv(key, defaultValue))
}

// getIntEnv lê uma variável de ambiente numérica e retorna-a como int.
func getIntEnv(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("⚠️ Aviso: Valor de %s ('%s') não é um número inteiro válido. Usando padrão (%d).", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}
