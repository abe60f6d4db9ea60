package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath = "."
	envPrefix   = "UNVEIL_"

	defaultPrimaryThreshold       = 0.6
	defaultDetailedThreshold      = 0.4
	defaultResponseDelay          = 2 * time.Second
	defaultCampaignTTL            = 30 * 24 * time.Hour
	defaultCompatibilityThreshold = 0.6
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	// Matching configuration for the offer feeds
	Matching *MatchingConfig `json:"matching" yaml:"matching" validate:"omitempty"`

	// Proposal configuration for the business response simulator
	Proposal *ProposalConfig `json:"proposal" yaml:"proposal" validate:"omitempty"`

	// Catalog configuration for the offer catalog source
	Catalog *CatalogConfig `json:"catalog" yaml:"catalog"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// MatchingConfig defines the minimum scores an offer needs to appear in each feed
type MatchingConfig struct {
	// Minimum score for the primary ranked feed
	PrimaryThreshold float64 `json:"primaryThreshold" yaml:"primaryThreshold" validate:"gte=0,lte=1"`

	// Minimum score for the detailed feed with match reasons
	DetailedThreshold float64 `json:"detailedThreshold" yaml:"detailedThreshold" validate:"gte=0,lte=1"`
}

// ProposalConfig defines how proposals are answered and how long campaigns last
type ProposalConfig struct {
	// Simulated wait before the business answers
	ResponseDelay time.Duration `json:"responseDelay" yaml:"responseDelay" validate:"gte=0"`

	// Lifetime of a campaign from creation
	CampaignTTL time.Duration `json:"campaignTTL" yaml:"campaignTTL" validate:"gt=0"`

	// Decision policy: "alternating" or "compatibility"
	Policy string `json:"policy" yaml:"policy" validate:"omitempty,oneof=alternating compatibility"`

	// Verdict of the first proposal under the alternating policy
	AcceptFirst bool `json:"acceptFirst" yaml:"acceptFirst"`

	// Minimum score accepted by the compatibility policy
	CompatibilityThreshold float64 `json:"compatibilityThreshold" yaml:"compatibilityThreshold" validate:"gte=0,lte=1"`

	// Reject proposals while the creator has an open campaign with the same business
	EnforceSingleOpenCampaign bool `json:"enforceSingleOpenCampaign" yaml:"enforceSingleOpenCampaign"`
}

// CatalogConfig defines where offers are loaded from
type CatalogConfig struct {
	// Path to a YAML catalog; empty uses the embedded seed catalog
	Path string `json:"path" yaml:"path"`
}

// Options selects the configuration file to load
type Options struct {
	// Explicit config file; empty searches config.yaml in the default locations
	Path string
}

// DefaultMatchingConfig returns the thresholds used when none are configured
func DefaultMatchingConfig() *MatchingConfig {
	return &MatchingConfig{
		PrimaryThreshold:  defaultPrimaryThreshold,
		DetailedThreshold: defaultDetailedThreshold,
	}
}

// DefaultProposalConfig returns the proposal settings used when none are configured
func DefaultProposalConfig() *ProposalConfig {
	return &ProposalConfig{
		ResponseDelay:          defaultResponseDelay,
		CampaignTTL:            defaultCampaignTTL,
		Policy:                 "alternating",
		AcceptFirst:            true,
		CompatibilityThreshold: defaultCompatibilityThreshold,
	}
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	configFile, err := findConfigFile(currEnv, configPath...)
	if err != nil {
		return nil, err
	}

	return LoadFile[T](configFile)
}

// LoadFile loads one .yaml file and overlays environment variables on it.
func LoadFile[T any](configFile string) (*T, error) {
	cfg := new(T)
	if err := loadInto(configFile, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func findConfigFile(currEnv string, configPath ...string) (string, error) {
	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return "", errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	return "", errors.Errorf("config file %s.yaml not found in any search path", currEnv)
}

// loadInto decodes configFile and the UNVEIL_ environment over cfg.
// Fields absent from both sources keep the value cfg already holds.
func loadInto[T any](configFile string, cfg *T) error {
	koanfInstance := koanf.New(".")

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return errors.Wrapf(err, "read config %s failed", configFile)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: UNVEIL_PROPOSAL_RESPONSEDELAY -> proposal.responseDelay
			key := canonicalizeEnvKey(strings.TrimPrefix(k, envPrefix), existingConfigMap)

			// A scalar must not replace a whole section.
			if _, isSection := koanfInstance.Get(key).(map[string]any); isSection {
				return "", nil
			}

			return key, v
		},
	}), nil); err != nil {
		return errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
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
		return errors.Wrapf(err, "unmarshal config %s failed", configFile)
	}

	return nil
}

// Defaults returns a configuration with every section set to its default values.
func Defaults() *Config {
	return &Config{
		Matching: DefaultMatchingConfig(),
		Proposal: DefaultProposalConfig(),
		Catalog:  &CatalogConfig{},
	}
}

// New loads the configuration over Defaults, so keys missing from the file keep their default.
func New(opts Options) (*Config, error) {
	configFile := opts.Path
	if configFile == "" {
		var err error
		configFile, err = findConfigFile("config", "config", "../config", "../../config")
		if err != nil {
			return nil, err
		}
	}

	cfg := Defaults()
	if err := loadInto(configFile, cfg); err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ApplyDefaults fills in sections the file set to null and a zero campaign TTL.
func (c *Config) ApplyDefaults() {
	if c.Matching == nil {
		c.Matching = DefaultMatchingConfig()
	}

	defaults := DefaultProposalConfig()
	if c.Proposal == nil {
		c.Proposal = defaults
	}
	if c.Proposal.CampaignTTL == 0 {
		c.Proposal.CampaignTTL = defaults.CampaignTTL
	}
	if c.Proposal.Policy == "" {
		c.Proposal.Policy = defaults.Policy
	}

	if c.Catalog == nil {
		c.Catalog = &CatalogConfig{}
	}
}

// Validate checks value ranges of the loaded configuration.
func (c *Config) Validate() error {
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(c); err != nil {
		return errors.Wrap(err, "invalid config")
	}

	return nil
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
