package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Dataset      Dataset      `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	Report       Report       `mapstructure:",squash"`
	ReportWarmUp ReportWarmUp `mapstructure:",squash"`
	Chart        Chart        `mapstructure:",squash"`
	Export       Export       `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Env      string `mapstructure:"app_env"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

// Dataset define de onde os registros de vendas são carregados
type Dataset struct {
	Source string `mapstructure:"dataset_source"` // csv, xlsx, postgres ou sqlite
	Path   string `mapstructure:"dataset_path"`
	Sheet  string `mapstructure:"dataset_sheet"`
}

type Database struct {
	DSN        string `mapstructure:"-"`
	Driver     string `mapstructure:"database_driver"`
	Password   string `mapstructure:"database_password"`
	URL        string `mapstructure:"database_url"`
	User       string `mapstructure:"database_user"`
	SQLitePath string `mapstructure:"sqlite_path"`
}

type Report struct {
	YearMin   int           `mapstructure:"report_year_min"`
	YearMax   int           `mapstructure:"report_year_max"`
	CacheSize int           `mapstructure:"report_cache_size"`
	CacheTTL  time.Duration `mapstructure:"report_cache_ttl"`
}

type ReportWarmUp struct {
	CronSchedule string `mapstructure:"report_warmup_cron"`
	Enabled      bool   `mapstructure:"report_warmup_enabled"`
}

type Chart struct {
	Width  int `mapstructure:"chart_width"`
	Height int `mapstructure:"chart_height"`
}

type Export struct {
	DownloadTTL  time.Duration `mapstructure:"export_download_ttl"`
	MaxDownloads int           `mapstructure:"export_max_downloads"`
}

// Origens de dataset suportadas
const (
	SourceCSV      = "csv"
	SourceXLSX     = "xlsx"
	SourcePostgres = "postgres"
	SourceSQLite   = "sqlite"
)

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8050)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:8050")

	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "debug")

	viper.SetDefault("DATASET_SOURCE", SourceCSV)
	viper.SetDefault("DATASET_PATH", "historical_automobile_sales.csv")
	viper.SetDefault("DATASET_SHEET", "")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/autosales?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("SQLITE_PATH", "autosales.db")

	// Mesma lista de anos do dropdown original
	viper.SetDefault("REPORT_YEAR_MIN", 1980)
	viper.SetDefault("REPORT_YEAR_MAX", 2023)
	viper.SetDefault("REPORT_CACHE_SIZE", 128)
	viper.SetDefault("REPORT_CACHE_TTL", "1h")

	viper.SetDefault("REPORT_WARMUP_CRON", "0 * * * *") // De hora em hora
	viper.SetDefault("REPORT_WARMUP_ENABLED", true)

	viper.SetDefault("CHART_WIDTH", 640)
	viper.SetDefault("CHART_HEIGHT", 400)

	viper.SetDefault("EXPORT_DOWNLOAD_TTL", "10m")
	viper.SetDefault("EXPORT_MAX_DOWNLOADS", 32)
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis de ambiente (viper não conseguiu ler .env): ", err)
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

	if err := config.Validate(); err != nil {
		return nil, err
	}

	config.Dataset.Source = strings.ToLower(strings.TrimSpace(config.Dataset.Source))
	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Validate verifica combinações inválidas de configuração
func (c *Config) Validate() error {
	if c.Report.YearMin > c.Report.YearMax {
		return fmt.Errorf("config: REPORT_YEAR_MIN (%d) maior que REPORT_YEAR_MAX (%d)", c.Report.YearMin, c.Report.YearMax)
	}
	if c.Report.CacheSize <= 0 {
		return fmt.Errorf("config: REPORT_CACHE_SIZE deve ser positivo")
	}
	if c.Export.MaxDownloads <= 0 {
		return fmt.Errorf("config: EXPORT_MAX_DOWNLOADS deve ser positivo")
	}
	if c.Chart.Width <= 0 || c.Chart.Height <= 0 {
		return fmt.Errorf("config: dimensões de gráfico inválidas %dx%d", c.Chart.Width, c.Chart.Height)
	}
	return nil
}

// Years retorna a lista de anos oferecida no seletor
func (r Report) Years() []int {
	years := make([]int, 0, r.YearMax-r.YearMin+1)
	for y := r.YearMin; y <= r.YearMax; y++ {
		years = append(years, y)
	}
	return years
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
