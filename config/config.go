package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/maastricht-university/presentation-eval/evaluation"
)

// EnvPrefix namespaces environment overrides, e.g. PEVAL_PIPELINE_LOG_LEVEL.
const EnvPrefix = "PEVAL"

var validate = validator.New(validator.WithRequiredStructEnabled())

type Service struct {
	URL string `mapstructure:"url" yaml:"url" validate:"omitempty,url"`
}

// Services are the analyzer endpoints. An empty URL disables the analyzer.
type Services struct {
	Motion        Service `mapstructure:"motion" yaml:"motion"`
	Expression    Service `mapstructure:"expression" yaml:"expression"`
	ASR           Service `mapstructure:"asr" yaml:"asr"`
	Content       Service `mapstructure:"content" yaml:"content"`
	Disfluency    Service `mapstructure:"disfluency" yaml:"disfluency"`
	Visualization Service `mapstructure:"visualization" yaml:"visualization"`
}

type Pipeline struct {
	Name        string  `mapstructure:"name" yaml:"name"`
	Version     string  `mapstructure:"version" yaml:"version"`
	LogLevel    string  `mapstructure:"log_level" yaml:"log_level" validate:"oneof=trace debug info warn warning error"`
	LogFormat   string  `mapstructure:"log_format" yaml:"log_format" validate:"oneof=text json"`
	Concurrency int     `mapstructure:"concurrency" yaml:"concurrency" validate:"min=1,max=64"`
	TargetFPS   float64 `mapstructure:"target_fps" yaml:"target_fps" validate:"gt=0,lte=60"`
	// RequestTimeout is per analyzer call, in seconds.
	RequestTimeout int `mapstructure:"request_timeout" yaml:"request_timeout" validate:"min=1"`
}

type Paths struct {
	Outputs string `mapstructure:"outputs" yaml:"outputs" validate:"required"`
}

type Root struct {
	Pipeline   Pipeline           `mapstructure:"pipeline" yaml:"pipeline"`
	Services   Services           `mapstructure:"services" yaml:"services"`
	Evaluation evaluation.Scoring `mapstructure:"evaluation" yaml:"evaluation"`
	Paths      Paths              `mapstructure:"paths" yaml:"paths"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("pipeline.name", "presentation-eval")
	v.SetDefault("pipeline.version", "dev")
	v.SetDefault("pipeline.log_level", "info")
	v.SetDefault("pipeline.log_format", "text")
	v.SetDefault("pipeline.concurrency", 4)
	v.SetDefault("pipeline.target_fps", 5.0)
	v.SetDefault("pipeline.request_timeout", 120)

	for _, svc := range []string{"motion", "expression", "asr", "content", "disfluency", "visualization"} {
		v.SetDefault("services."+svc+".url", "")
	}

	s := evaluation.DefaultScoring()
	v.SetDefault("evaluation.weights.body_language", s.Weights.BodyLanguage)
	v.SetDefault("evaluation.weights.vocal_delivery", s.Weights.VocalDelivery)
	v.SetDefault("evaluation.weights.content_quality", s.Weights.ContentQuality)
	v.SetDefault("evaluation.weights.facial_expression", s.Weights.FacialExpression)
	v.SetDefault("evaluation.weights.technical_aspects", s.Weights.TechnicalAspects)
	v.SetDefault("evaluation.strength_score", s.StrengthScore)
	v.SetDefault("evaluation.weakness_score", s.WeaknessScore)
	v.SetDefault("evaluation.focus_areas", s.FocusAreas)
	v.SetDefault("evaluation.max_suggestions", s.MaxSuggestions)
	v.SetDefault("evaluation.max_highlights", s.MaxHighlights)

	v.SetDefault("paths.outputs", "outputs")
}

// candidates lists the config files tried when no explicit path is given.
func candidates() []string {
	env := os.Getenv("CONFIG_ENV")
	if env == "" {
		env = "dev"
	}
	return []string{
		filepath.Join("config", env, "config.yaml"),
		"config.yaml",
	}
}

// Load reads defaults, then the YAML file at path (or the first existing
// candidate when path is empty), then PEVAL_* environment overrides.
// A missing candidate file is not an error; a missing explicit path is.
func Load(path string) (*Root, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path == "" {
		for _, p := range candidates() {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Root
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field constraints and the scoring model.
func (r *Root) Validate() error {
	if err := r.Evaluation.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if err := validate.Struct(r); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return fmt.Errorf("invalid config: %s failed %q", verrs[0].Namespace(), verrs[0].Tag())
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Timeout is the per-call analyzer timeout.
func (p Pipeline) Timeout() time.Duration { return DurSeconds(p.RequestTimeout) }

func DurSeconds(n int) time.Duration { return time.Duration(n) * time.Second }
