// Package profile loads creator profiles from YAML files.
package profile

import (
	"fmt"
	"os"

	"unveil/internal/domain/entity"
	domainerrors "unveil/internal/domain/errors"
	"unveil/internal/infra/validator"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Parse decodes and validates a creator profile. Role and level, when set, must be known values.
func Parse(data []byte, v *validator.Validator) (*entity.User, error) {
	var user entity.User
	if err := yaml.Unmarshal(data, &user); err != nil {
		return nil, errors.Wrap(err, "decode profile")
	}

	if err := v.Struct(&user); err != nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails(err.Error()), "invalid profile")
	}
	if user.Role != "" && !user.Role.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("unknown role %q", user.Role)), "invalid profile")
	}
	if user.Stats.Level != "" && !user.Stats.Level.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("unknown level %q", user.Stats.Level)), "invalid profile")
	}

	return &user, nil
}

// Load reads the creator profile at path.
func Load(path string, v *validator.Validator) (*entity.User, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read profile %s", path)
	}

	return Parse(data, v)
}
