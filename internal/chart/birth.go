package chart

import (
	"math"
	"strings"

	"github.com/tartampluch/go-jyotish/internal/config"
	jerrors "github.com/tartampluch/go-jyotish/internal/errors"
)

// BirthInput is the raw request for a chart.
type BirthInput struct {
	Name      string  `json:"name,omitempty" yaml:"name,omitempty" toml:"name"`
	Date      string  `json:"date" yaml:"date" toml:"date"`
	Time      string  `json:"time" yaml:"time" toml:"time"`
	Zone      string  `json:"zone" yaml:"zone" toml:"zone"`
	Latitude  float64 `json:"latitude" yaml:"latitude" toml:"latitude"`
	Longitude float64 `json:"longitude" yaml:"longitude" toml:"longitude"`
}

// Validate reports every problem at once as a single InvalidBirthData error.
func (in BirthInput) Validate() error {
	var problems []string
	if strings.TrimSpace(in.Date) == "" {
		problems = append(problems, config.ErrDateMissing)
	}
	if strings.TrimSpace(in.Time) == "" {
		problems = append(problems, config.ErrTimeMissing)
	}
	if strings.TrimSpace(in.Zone) == "" {
		problems = append(problems, config.ErrZoneMissing)
	}
	if !finite(in.Latitude) || !finite(in.Longitude) {
		problems = append(problems, config.ErrCoordNotFinite)
	} else {
		if in.Latitude < config.MinLatitude || in.Latitude > config.MaxLatitude {
			problems = append(problems, config.ErrLatitudeRange)
		}
		if in.Longitude < config.MinLongitude || in.Longitude > config.MaxLongitude {
			problems = append(problems, config.ErrLongitudeRange)
		}
	}

	if len(problems) == 0 {
		return nil
	}
	return jerrors.New(jerrors.InvalidBirthData, "BirthInput.Validate", config.ErrBirthData).WithDetails(problems...)
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
