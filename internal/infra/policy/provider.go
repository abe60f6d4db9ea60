package policy

import (
	"log/slog"

	"unveil/config"
	"unveil/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Policy names accepted in configuration.
const (
	NameAlternating   = "alternating"
	NameCompatibility = "compatibility"
)

// Params holds dependencies for DecisionPolicy, injected by Fx.
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// New creates the DecisionPolicy named in configuration.
func New(params Params) (service.DecisionPolicy, error) {
	cfg := params.Config.Proposal
	if cfg == nil {
		cfg = config.DefaultProposalConfig()
	}

	switch cfg.Policy {
	case "", NameAlternating:
		params.Logger.Debug("Using alternating decision policy", slog.Bool("accept_first", cfg.AcceptFirst))

		return NewAlternatingPolicy(cfg.AcceptFirst), nil
	case NameCompatibility:
		params.Logger.Debug("Using compatibility decision policy", slog.Float64("threshold", cfg.CompatibilityThreshold))

		return NewCompatibilityPolicy(cfg.CompatibilityThreshold), nil
	default:
		return nil, errors.Errorf("unknown decision policy: %s", cfg.Policy)
	}
}
