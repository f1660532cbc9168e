package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	ProviderMock     = "mock"
	ProviderMeta     = "meta"
	ProviderPostgres = "postgres"
)

type Config struct {
	App           App          `mapstructure:",squash"`
	Server        Server       `mapstructure:",squash"`
	Database      Database     `mapstructure:",squash"`
	Meta          Meta         `mapstructure:",squash"`
	Auth          Auth         `mapstructure:",squash"`
	Providers     Providers    `mapstructure:",squash"`
	MockLatency   MockLatency  `mapstructure:",squash"`
	Insights      Insights     `mapstructure:",squash"`
	Integration   Integration  `mapstructure:",squash"`
	Features      Features     `mapstructure:",squash"`
	InsightsSync  InsightsSync `mapstructure:",squash"`
	LeadsSync     LeadsSync    `mapstructure:",squash"`
	AllowedOrigin []string     `mapstructure:"cors_allowed_origins"`
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

type Meta struct {
	BaseURL     string        `mapstructure:"meta_base_url"`
	URL         string        `mapstructure:"meta_url"`
	Version     string        `mapstructure:"meta_version"`
	AccessToken string        `mapstructure:"meta_access_token"`
	Timeout     time.Duration `mapstructure:"meta_timeout"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret   string        `mapstructure:"auth_secret"`
	TokenTTL time.Duration `mapstructure:"auth_token_ttl"`
}

// Providers escolhe a implementação de cada porta: dados simulados ou fontes reais
type Providers struct {
	Insights string `mapstructure:"insights_provider"`
	Leads    string `mapstructure:"leads_provider"`
}

// MockLatency são os atrasos artificiais dos serviços simulados
type MockLatency struct {
	Insights     time.Duration `mapstructure:"mock_insights_delay"`
	LeadsFetch   time.Duration `mapstructure:"mock_leads_fetch_delay"`
	LeadFetch    time.Duration `mapstructure:"mock_lead_fetch_delay"`
	LeadMutation time.Duration `mapstructure:"mock_lead_mutation_delay"`
	ConfigFetch  time.Duration `mapstructure:"mock_config_fetch_delay"`
	ConfigSave   time.Duration `mapstructure:"mock_config_save_delay"`
	Credentials  time.Duration `mapstructure:"mock_credentials_delay"`
	WebhookTest  time.Duration `mapstructure:"mock_webhook_delay"`
}

// Insights contém os filtros iniciais do painel
type Insights struct {
	DefaultAccountID  string   `mapstructure:"default_ad_account_id"`
	LookbackDays      int      `mapstructure:"default_lookback_days"`
	DefaultLevel      string   `mapstructure:"default_level"`
	DefaultBreakdowns []string `mapstructure:"default_breakdowns"`
	DefaultObjective  string   `mapstructure:"default_campaign_objective"`
}

// Integration são os valores iniciais da tela de configurações
type Integration struct {
	AdAccountID     string `mapstructure:"integration_ad_account_id"`
	MetaAccessToken string `mapstructure:"integration_meta_access_token"`
	WhatsappToken   string `mapstructure:"integration_whatsapp_token"`
	WebhookURL      string `mapstructure:"integration_webhook_url"`
	WebhookSecret   string `mapstructure:"integration_webhook_secret"`
}

type Features struct {
	WhatsappCLID bool `mapstructure:"feature_whatsapp_clid"`
}

type InsightsSync struct {
	CronSchedule string `mapstructure:"insights_refresh_cron"`
	Enabled      bool   `mapstructure:"insights_refresh_enabled"`
}

type LeadsSync struct {
	CronSchedule string `mapstructure:"leads_refresh_cron"`
	Enabled      bool   `mapstructure:"leads_refresh_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/engage?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v19.0")
	viper.SetDefault("META_ACCESS_TOKEN", "")
	viper.SetDefault("META_TIMEOUT", "30s")

	viper.SetDefault("AUTH_SECRET", "your_secret_key")
	viper.SetDefault("AUTH_TOKEN_TTL", "24h")

	viper.SetDefault("INSIGHTS_PROVIDER", ProviderMock)
	viper.SetDefault("LEADS_PROVIDER", ProviderMock)

	// Atrasos dos serviços simulados, iguais aos do protótipo
	viper.SetDefault("MOCK_INSIGHTS_DELAY", "800ms")
	viper.SetDefault("MOCK_LEADS_FETCH_DELAY", "500ms")
	viper.SetDefault("MOCK_LEAD_FETCH_DELAY", "300ms")
	viper.SetDefault("MOCK_LEAD_MUTATION_DELAY", "400ms")
	viper.SetDefault("MOCK_CONFIG_FETCH_DELAY", "300ms")
	viper.SetDefault("MOCK_CONFIG_SAVE_DELAY", "500ms")
	viper.SetDefault("MOCK_CREDENTIALS_DELAY", "800ms")
	viper.SetDefault("MOCK_WEBHOOK_DELAY", "1s")

	viper.SetDefault("DEFAULT_AD_ACCOUNT_ID", "act_123456789")
	viper.SetDefault("DEFAULT_LOOKBACK_DAYS", 30)
	viper.SetDefault("DEFAULT_LEVEL", "adset")
	viper.SetDefault("DEFAULT_BREAKDOWNS", "age,gender,publisher_platform")
	viper.SetDefault("DEFAULT_CAMPAIGN_OBJECTIVE", "all")

	viper.SetDefault("INTEGRATION_AD_ACCOUNT_ID", "act_123456789")
	viper.SetDefault("INTEGRATION_META_ACCESS_TOKEN", "EAAxxxxxxxxxx")
	viper.SetDefault("INTEGRATION_WHATSAPP_TOKEN", "EABxxxxxxxxxx")
	viper.SetDefault("INTEGRATION_WEBHOOK_URL", "https://f-engage.app/webhook")
	viper.SetDefault("INTEGRATION_WEBHOOK_SECRET", "my_secret_key_123")

	viper.SetDefault("FEATURE_WHATSAPP_CLID", true)

	viper.SetDefault("INSIGHTS_REFRESH_CRON", "*/15 * * * *") // A cada 15 minutos
	viper.SetDefault("INSIGHTS_REFRESH_ENABLED", false)
	viper.SetDefault("LEADS_REFRESH_CRON", "*/5 * * * *") // A cada 5 minutos
	viper.SetDefault("LEADS_REFRESH_ENABLED", false)

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173,http://localhost:8080")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

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

	config.Meta.URL = fmt.Sprintf("%s/%s", config.Meta.BaseURL, config.Meta.Version)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate rejeita combinações de provedores desconhecidas
func (c *Config) Validate() error {
	switch c.Providers.Insights {
	case ProviderMock, ProviderMeta:
	default:
		return fmt.Errorf("config: INSIGHTS_PROVIDER inválido: %q", c.Providers.Insights)
	}

	switch c.Providers.Leads {
	case ProviderMock, ProviderPostgres:
	default:
		return fmt.Errorf("config: LEADS_PROVIDER inválido: %q", c.Providers.Leads)
	}

	if c.Providers.Insights == ProviderMeta && c.Meta.AccessToken == "" {
		return fmt.Errorf("config: META_ACCESS_TOKEN é obrigatório com INSIGHTS_PROVIDER=meta")
	}

	if c.Insights.LookbackDays < 0 {
		return fmt.Errorf("config: DEFAULT_LOOKBACK_DAYS não pode ser negativo")
	}

	return nil
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
		logrus.Debug("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
