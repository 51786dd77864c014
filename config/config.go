package config

import (
	"fmt"
	"github.com/spf13/viper"
)

// Config 存储所有配置信息
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	ServerPort  string `mapstructure:"SERVER_PORT"`

	// 数据库配置（本地 sqlite 文件）
	DBPath string `mapstructure:"DB_PATH"`

	// Redis配置
	RedisHost     string `mapstructure:"REDIS_HOST"`
	RedisPort     string `mapstructure:"REDIS_PORT"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`

	// 计费配置
	DefaultHourlyRate float64 `mapstructure:"DEFAULT_HOURLY_RATE"`

	// 记分卡目标配置（周/月营收目标）
	WeekRevenueTarget  float64 `mapstructure:"WEEK_REVENUE_TARGET"`
	MonthRevenueTarget float64 `mapstructure:"MONTH_REVENUE_TARGET"`

	// Stripe 支付配置
	StripeAPIKey        string `mapstructure:"STRIPE_API_KEY"`
	StripeWebhookSecret string `mapstructure:"STRIPE_WEBHOOK_SECRET"`
}

// LoadConfig 从环境变量或配置文件加载配置
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName(".env")
	viper.SetConfigType("env")

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "5000")
	viper.SetDefault("DB_PATH", "database.db")
	viper.SetDefault("DEFAULT_HOURLY_RATE", 140.00)
	// 默认目标按年度毛收入目标 43500 折算到周和月
	viper.SetDefault("WEEK_REVENUE_TARGET", 836.54)
	viper.SetDefault("MONTH_REVENUE_TARGET", 3625.00)

	err = viper.ReadInConfig()
	if err != nil {
		// 允许配置文件不存在，此时会从环境变量中读取
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return
		}
		err = nil
	}

	err = viper.Unmarshal(&config)
	return
}

// GetRedisConnString 返回Redis连接字符串
func (c *Config) GetRedisConnString() string {
	return fmt.Sprintf("%s:%s", c.RedisHost, c.RedisPort)
}
