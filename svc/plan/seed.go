package plan

import (
	"context"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidSeed is returned when the seed file cannot be parsed or a
// plan entry fails validation.
var ErrInvalidSeed = errors.New("invalid plan seed file")

type seedEntry struct {
	Name          string `yaml:"name"`
	MonthlyCost   string `yaml:"monthly_cost"`
	DurationValue int    `yaml:"duration_value"`
	DurationUnit  string `yaml:"duration_unit"`
}

// Seed upserts the plans declared in a YAML file into the catalog.
// Seeding is idempotent: plans are keyed by name, so rerunning at every
// startup only picks up changed values.
func Seed(ctx context.Context, store Store, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return errors.Join(ErrInvalidSeed, err)
	}

	var entries []seedEntry
	if err := yaml.Unmarshal(raw, &entries); err != nil {
		return errors.Join(ErrInvalidSeed, err)
	}

	for _, e := range entries {
		unit, err := ParseDurationUnit(e.DurationUnit)
		if err != nil {
			return errors.Join(ErrInvalidSeed, fmt.Errorf("plan %q: %w", e.Name, err))
		}
		if e.Name == "" || e.DurationValue <= 0 {
			return errors.Join(ErrInvalidSeed, fmt.Errorf("plan %q: name and positive duration_value are required", e.Name))
		}

		p := Plan{
			Name:          e.Name,
			MonthlyCost:   e.MonthlyCost,
			DurationValue: e.DurationValue,
			DurationUnit:  unit,
		}
		if err := store.Upsert(ctx, p); err != nil {
			return fmt.Errorf("seed plan %q: %w", e.Name, err)
		}
	}
	return nil
}
