package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App    AppConfig
	JWT    JWTConfig
	HTTP   HTTPConfig
	PayOrd PayOrdConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// JWTConfig configuración de JWT. Secret vacío desactiva la autenticación de la API.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// Enabled indica si las rutas de conversión exigen token.
func (c JWTConfig) Enabled() bool {
	return c.Secret != ""
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// PayOrdConfig configuración de la conversión de facturas a órdenes de pago.
type PayOrdConfig struct {
	PayersFile     string // YAML de perfiles de pagador; vacío = perfiles incorporados
	OutputEncoding string // utf-16 (banco) o utf-8
	OutputFilename string
	MaxUploadMB    int
	SwaggerFile    string
}

// MaxUploadBytes límite del cuerpo de las solicitudes.
func (c PayOrdConfig) MaxUploadBytes() int {
	return c.MaxUploadMB * 1024 * 1024
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, JWT_SECRET, PAYORD_PAYERS_FILE, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig()

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "payord-api"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60),
			Issuer:     getString(v, "JWT_ISSUER", "payord-api"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		PayOrd: PayOrdConfig{
			PayersFile:     getString(v, "PAYORD_PAYERS_FILE", ""),
			OutputEncoding: getString(v, "PAYORD_OUTPUT_ENCODING", "utf-16"),
			OutputFilename: getString(v, "PAYORD_OUTPUT_FILENAME", "output.xml"),
			MaxUploadMB:    getInt(v, "PAYORD_MAX_UPLOAD_MB", 10),
			SwaggerFile:    getString(v, "PAYORD_SWAGGER_FILE", "./docs/swagger.json"),
		},
	}

	if cfg.HTTP.Port <= 0 || cfg.HTTP.Port > 65535 {
		return nil, fmt.Errorf("config: HTTP_PORT inválido: %d", cfg.HTTP.Port)
	}
	if cfg.PayOrd.MaxUploadMB <= 0 {
		return nil, fmt.Errorf("config: PAYORD_MAX_UPLOAD_MB inválido: %d", cfg.PayOrd.MaxUploadMB)
	}
	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
