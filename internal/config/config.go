package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	Shortener    Shortener    `mapstructure:",squash"`
	Cache        Cache        `mapstructure:",squash"`
	Analytics    Analytics    `mapstructure:",squash"`
	SnapshotSync SnapshotSync `mapstructure:",squash"`
	Auth         Auth         `mapstructure:",squash"`
	SecretKey    string       `mapstructure:"secret_key"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// Shortener guarda as credenciais do provedor externo de estatísticas de
// links curtos. Sem API key configurada, o integrador devolve dados simulados.
type Shortener struct {
	URL    string `mapstructure:"shortener_url"`
	APIKey string `mapstructure:"shortener_api_key"`
}

// Cache configura o cache de respostas de analytics no Redis
type Cache struct {
	Enabled    bool   `mapstructure:"cache_enabled"`
	RedisURL   string `mapstructure:"cache_redis_url"`
	TTLSeconds int    `mapstructure:"cache_ttl_seconds"`
}

// Analytics parametriza o motor de análise: concorrência, timeout por link e
// a política de score e tendência
type Analytics struct {
	MaxConcurrentLinks int     `mapstructure:"analytics_max_concurrent_links"`
	LinkTimeoutSeconds int     `mapstructure:"analytics_link_timeout_seconds"`
	VolumeWeight       float64 `mapstructure:"analytics_score_volume_weight"`
	UniqueWeight       float64 `mapstructure:"analytics_score_unique_weight"`
	ConsistencyWeight  float64 `mapstructure:"analytics_score_consistency_weight"`
	VolumeTarget       float64 `mapstructure:"analytics_score_volume_target"`
	TrendThreshold     float64 `mapstructure:"analytics_trend_threshold"`
}

type SnapshotSync struct {
	CronSchedule      string `mapstructure:"snapshot_sync_cron"`
	LookbackDays      int    `mapstructure:"snapshot_sync_lookback_days"`
	RetentionDays     int    `mapstructure:"snapshot_sync_retention_days"`
	MaxConcurrentJobs int    `mapstructure:"snapshot_sync_max_concurrent_jobs"`
	Enabled           bool   `mapstructure:"snapshot_sync_enabled"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/linkanalytics")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("SHORTENER_URL", "https://api.short.io")
	viper.SetDefault("SHORTENER_API_KEY", "") // ONLY LOCAL

	viper.SetDefault("CACHE_ENABLED", false)
	viper.SetDefault("CACHE_REDIS_URL", "redis://localhost:6379/0")
	viper.SetDefault("CACHE_TTL_SECONDS", 300)

	// Defaults do motor de análise
	viper.SetDefault("ANALYTICS_MAX_CONCURRENT_LINKS", 5)  // 5 links em paralelo
	viper.SetDefault("ANALYTICS_LINK_TIMEOUT_SECONDS", 20) // 20 segundos por link
	viper.SetDefault("ANALYTICS_SCORE_VOLUME_WEIGHT", 0.4)
	viper.SetDefault("ANALYTICS_SCORE_UNIQUE_WEIGHT", 0.4)
	viper.SetDefault("ANALYTICS_SCORE_CONSISTENCY_WEIGHT", 0.2)
	viper.SetDefault("ANALYTICS_SCORE_VOLUME_TARGET", 100.0)
	viper.SetDefault("ANALYTICS_TREND_THRESHOLD", 0.10)

	// Defaults para sincronização de snapshots
	viper.SetDefault("SNAPSHOT_SYNC_CRON", "0 3 * * *")      // Todos os dias às 3h da manhã
	viper.SetDefault("SNAPSHOT_SYNC_LOOKBACK_DAYS", 7)       // 7 dias para consolidar dados
	viper.SetDefault("SNAPSHOT_SYNC_RETENTION_DAYS", 180)    // 180 dias de retenção
	viper.SetDefault("SNAPSHOT_SYNC_MAX_CONCURRENT_JOBS", 3) // 3 jobs concorrentes
	viper.SetDefault("SNAPSHOT_SYNC_ENABLED", false)         // Habilitar sincronização de snapshots

	viper.SetDefault("SECRET_KEY", "your_secret_key")
	viper.SetDefault("AUTH_SECRET", "your_auth_secret")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../.env"),            // Diretório acima
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
