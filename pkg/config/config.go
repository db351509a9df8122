package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env
// y opcionalmente archivo .env).
type Config struct {
	App  AppConfig
	HTTP HTTPConfig
	Auth AuthConfig
	JWT  JWTConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig configuración del servidor HTTP y CORS. CORSOrigin es el único
// origen permitido para peticiones con credenciales.
type HTTPConfig struct {
	Host       string
	Port       int
	CORSOrigin string
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// AuthConfig selección de la estrategia de resolución de identidad.
// Mode "header" lee el email directo de Header; mode "token" exige un JWT
// cuyo claim de email se resuelve contra los mismos fixtures.
type AuthConfig struct {
	Mode   string // header | token
	Header string // nombre del header de identidad en modo header
}

// JWTConfig configuración de JWT (solo se usa con AUTH_MODE=token).
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde
// archivo). Las env vars tienen prioridad. Nombres esperados: APP_ENV,
// HTTP_PORT, CORS_ORIGIN, AUTH_MODE, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración .env en el directorio de trabajo
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "carshop-api"),
		},
		HTTP: HTTPConfig{
			Host:       getString(v, "HTTP_HOST", "0.0.0.0"),
			Port:       getInt(v, "HTTP_PORT", 8080),
			CORSOrigin: getString(v, "CORS_ORIGIN", "http://localhost:5173"),
		},
		Auth: AuthConfig{
			Mode:   getString(v, "AUTH_MODE", "header"),
			Header: getString(v, "AUTH_HEADER", "x-user-email"),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60),
			Issuer:     getString(v, "JWT_ISSUER", "carshop-api"),
		},
	}

	if cfg.Auth.Mode != "header" && cfg.Auth.Mode != "token" {
		return nil, fmt.Errorf("config: AUTH_MODE inválido: %q", cfg.Auth.Mode)
	}
	if cfg.Auth.Mode == "token" && cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("config: AUTH_MODE=token requiere JWT_SECRET")
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
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
