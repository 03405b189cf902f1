package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App           App           `mapstructure:",squash"`
	Server        Server        `mapstructure:",squash"`
	EntitySource  EntitySource  `mapstructure:",squash"`
	AuthService   AuthService   `mapstructure:",squash"`
	Auth          Auth          `mapstructure:",squash"`
	Commission    Commission    `mapstructure:",squash"`
	Dashboard     Dashboard     `mapstructure:",squash"`
	RankingWarmup RankingWarmup `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type EntitySource struct {
	DatasetPath string `mapstructure:"entity_dataset_path"`
}

type AuthService struct {
	URL string `mapstructure:"auth_service_url"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

// Commission guarda as duas taxas de comissão. São configuráveis de forma
// independente (iguais por padrão): a taxa de cliente alimenta as
// estatísticas por cliente e a de consultor alimenta o extrato.
type Commission struct {
	ClientRate     float64 `mapstructure:"client_commission_rate"`
	ConsultantRate float64 `mapstructure:"consultant_commission_rate"`
}

type Dashboard struct {
	PageSize int `mapstructure:"dashboard_page_size"`
}

type RankingWarmup struct {
	CronSchedule string `mapstructure:"ranking_warmup_cron"`
	Enabled      bool   `mapstructure:"ranking_warmup_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("ENTITY_DATASET_PATH", "") // vazio usa o dataset embutido

	viper.SetDefault("AUTH_SERVICE_URL", "http://localhost:8080/api")
	viper.SetDefault("AUTH_SECRET", "your_auth_secret")

	viper.SetDefault("CLIENT_COMMISSION_RATE", 0.10)
	viper.SetDefault("CONSULTANT_COMMISSION_RATE", 0.10)

	viper.SetDefault("DASHBOARD_PAGE_SIZE", 5)

	viper.SetDefault("RANKING_WARMUP_CRON", "0 6 * * *") // Todos os dias às 6h da manhã
	viper.SetDefault("RANKING_WARMUP_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

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

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
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
