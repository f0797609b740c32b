package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultDataDir        = "data"
	defaultPriceRangeMax  = 5000
	defaultFeaturedLimit  = 6
	defaultRelatedLimit   = 4
	defaultQRCodeSize     = 256
	defaultAccessTokenTTL = 12 * time.Hour
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port     int `json:"port" yaml:"port"`
		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Catalog configures where the static catalog files live and how the
	// shop views are derived from them.
	Catalog *CatalogConfig `json:"catalog" yaml:"catalog"`

	// Admin configures the operator login for the admin API.
	Admin *AdminConfig `json:"admin" yaml:"admin"`

	// QRCode configuration for product WhatsApp QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// CatalogConfig defines the catalog data source and view limits.
type CatalogConfig struct {
	DataDir       string `json:"dataDir" yaml:"dataDir"`
	PriceRangeMax int    `json:"priceRangeMax" yaml:"priceRangeMax"`
	FeaturedLimit int    `json:"featuredLimit" yaml:"featuredLimit"`
	RelatedLimit  int    `json:"relatedLimit" yaml:"relatedLimit"`
}

// AdminConfig defines the single-operator admin credentials.
// PasswordHash is a bcrypt hash of the operator password.
type AdminConfig struct {
	PasswordHash   string        `json:"passwordHash" yaml:"passwordHash"`
	AccessSecret   string        `json:"accessSecret" yaml:"accessSecret"`
	AccessTokenTTL time.Duration `json:"accessTokenTtl" yaml:"accessTokenTtl"`
}

// QRCodeConfig defines QR code generation parameters.
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// LoadWithEnv loads the <env>.yaml config from the given search paths and
// overlays environment variables on top of it. The environment is selected
// with CONF_ENV and defaults to "local".
func LoadWithEnv[T any](configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	currEnv := os.Getenv("CONF_ENV")
	if currEnv == "" {
		currEnv = "local"
	}

	searchPaths := make([]string, 0, len(configPath)+1)
	if len(configPath) == 0 {
		searchPaths = append(searchPaths, ".")
	} else {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "get working directory failed")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to a path and align each segment with
			// existing YAML keys. Example: CATALOG_DATADIR -> catalog.dataDir
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if cfg.Catalog == nil {
		cfg.Catalog = &CatalogConfig{}
	}
	if strings.TrimSpace(cfg.Catalog.DataDir) == "" {
		cfg.Catalog.DataDir = defaultDataDir
	}
	if cfg.Catalog.PriceRangeMax <= 0 {
		cfg.Catalog.PriceRangeMax = defaultPriceRangeMax
	}
	if cfg.Catalog.FeaturedLimit <= 0 {
		cfg.Catalog.FeaturedLimit = defaultFeaturedLimit
	}
	if cfg.Catalog.RelatedLimit <= 0 {
		cfg.Catalog.RelatedLimit = defaultRelatedLimit
	}

	if cfg.Admin != nil && cfg.Admin.AccessTokenTTL <= 0 {
		cfg.Admin.AccessTokenTTL = defaultAccessTokenTTL
	}

	if cfg.QRCode == nil {
		cfg.QRCode = &QRCodeConfig{Size: defaultQRCodeSize, ErrorCorrectionLevel: "M"}
	}

	return cfg, nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
