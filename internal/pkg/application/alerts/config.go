package alerts

import (
	"fmt"
	"io"

	"github.com/vineetparikh-rph/temprx360/pkg/types"

	yaml "gopkg.in/yaml.v2"
)

// ThresholdRange is an inclusive [min,max] band for one reading type.
type ThresholdRange struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// ThresholdPolicy holds the acceptable bands per reading type, with optional
// per site overrides keyed by site code. Breach magnitude above
// CriticalBreach escalates the alert from warning to critical.
type ThresholdPolicy struct {
	Temperature    ThresholdRange            `yaml:"temperature"`
	Humidity       ThresholdRange            `yaml:"humidity"`
	CriticalBreach float64                   `yaml:"criticalBreach"`
	SiteOverrides  map[string]SiteThresholds `yaml:"siteOverrides"`
}

type SiteThresholds struct {
	Temperature *ThresholdRange `yaml:"temperature"`
	Humidity    *ThresholdRange `yaml:"humidity"`
}

// DefaultPolicy follows CDC guidance for refrigerated storage (2-8 °C) with
// a 45-75 %RH humidity band.
func DefaultPolicy() ThresholdPolicy {
	return ThresholdPolicy{
		Temperature:    ThresholdRange{Min: 2.0, Max: 8.0},
		Humidity:       ThresholdRange{Min: 45.0, Max: 75.0},
		CriticalBreach: 3.0,
	}
}

func NewPolicy(data io.ReadCloser) (ThresholdPolicy, error) {
	defer data.Close()

	buf, err := io.ReadAll(data)
	if err != nil {
		return ThresholdPolicy{}, err
	}

	policy := DefaultPolicy()
	if err := yaml.Unmarshal(buf, &policy); err != nil {
		return ThresholdPolicy{}, fmt.Errorf("invalid threshold policy: %w", err)
	}

	return policy, nil
}

// RangeFor returns the band for the given reading type at the given site,
// falling back to the policy wide band when the site has no override.
func (p ThresholdPolicy) RangeFor(alertType, siteCode string) (ThresholdRange, bool) {
	if o, ok := p.SiteOverrides[siteCode]; ok {
		switch alertType {
		case types.AlertTypeTemperature:
			if o.Temperature != nil {
				return *o.Temperature, true
			}
		case types.AlertTypeHumidity:
			if o.Humidity != nil {
				return *o.Humidity, true
			}
		}
	}

	switch alertType {
	case types.AlertTypeTemperature:
		return p.Temperature, true
	case types.AlertTypeHumidity:
		return p.Humidity, true
	}

	return ThresholdRange{}, false
}

// Severity maps the magnitude of a breach onto an alert severity. A breach
// beyond CriticalBreach units outside the band is critical, anything else
// warning.
func (p ThresholdPolicy) Severity(magnitude float64) types.AlertSeverity {
	if magnitude >= p.CriticalBreach {
		return types.SeverityCritical
	}
	return types.SeverityWarning
}
