package services

import (
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/dmaops/operaciones_mid/helpers"

	beego "github.com/beego/beego/v2/server/web"
)

// Config centraliza la configuración necesaria para hablar con el CRUD de operaciones.
type Config struct {
	AppName                string
	HTTPPort               int
	RunMode                string
	OperacionesCRUDBaseURL string
	CRUDBearerToken        string
	RequestTimeout         time.Duration
	RetryCount             int
	SaludCacheTTL          time.Duration
	DemoHabilitado         bool
}

var (
	cfg  Config
	once sync.Once
)

// GetConfig devuelve la configuración cargada desde variables de entorno o app.conf.
func GetConfig() Config {
	once.Do(func() {
		cfg = Config{
			AppName:                getString("APP_NAME", "appname", "operaciones_mid"),
			HTTPPort:               getInt("HTTP_PORT", "httpport", 8080),
			RunMode:                getString("RUN_MODE", "runmode", "dev"),
			OperacionesCRUDBaseURL: normalizeBase(getString("OPERACIONES_CRUD_BASE_URL", "operaciones_crud_base_url", "")),
			CRUDBearerToken:        getString("CRUD_BEARER_TOKEN", "crud_bearer_token", ""),
			RequestTimeout:         time.Duration(getInt("REQUEST_TIMEOUT_MS", "request_timeout_ms", 10000)) * time.Millisecond,
			RetryCount:             getInt("RETRY_COUNT", "retry_count", 2),
			SaludCacheTTL:          time.Duration(getInt("SALUD_CACHE_TTL_MS", "salud_cache_ttl_ms", 30000)) * time.Millisecond,
			DemoHabilitado:         getBool("DEMO_HABILITADO", "demo_habilitado", true),
		}

		if cfg.OperacionesCRUDBaseURL == "" && !cfg.DemoHabilitado {
			panic("OPERACIONES_CRUD_BASE_URL no configurado")
		}

		helpers.SetDefaultRetryCount(cfg.RetryCount)
	})
	return cfg
}

func getString(envKey, confKey, def string) string {
	if val := strings.TrimSpace(os.Getenv(envKey)); val != "" {
		return val
	}
	if val, err := beego.AppConfig.String(confKey); err == nil && strings.TrimSpace(val) != "" {
		return val
	}
	return def
}

func getInt(envKey, confKey string, def int) int {
	if val := strings.TrimSpace(os.Getenv(envKey)); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	if val, err := beego.AppConfig.Int(confKey); err == nil {
		return val
	}
	return def
}

func getBool(envKey, confKey string, def bool) bool {
	if val := strings.TrimSpace(os.Getenv(envKey)); val != "" {
		lower := strings.ToLower(val)
		return lower == "true" || lower == "1" || lower == "si"
	}
	if val, err := beego.AppConfig.Bool(confKey); err == nil {
		return val
	}
	return def
}

func normalizeBase(value string) string {
	return strings.TrimSpace(value)
}

// BuildURL compone una URL asegurando que no haya dobles slashes.
func BuildURL(base string, elems ...string) string {
	trimmed := strings.TrimSuffix(base, "/")
	for _, e := range elems {
		trimmed += "/" + strings.Trim(e, "/")
	}
	return trimmed
}
