package types

import (
	"time"
)

// Site is a physical pharmacy location. Sites own sensor assignments and are
// the unit of access scoping.
type Site struct {
	ID   string `json:"siteID"`
	Code string `json:"code"`
	Name string `json:"name"`
}

// SensorAssignment binds an opaque provider sensor ID to a site and a human
// readable location label. It is the only place provider identity becomes
// internally meaningful.
type SensorAssignment struct {
	ID               string    `json:"assignmentID"`
	ProviderSensorID string    `json:"providerSensorID"`
	SiteID           string    `json:"siteID"`
	LocationType     string    `json:"locationType"`
	Active           bool      `json:"active"`
	CreatedOn        time.Time `json:"createdOn"`
}

// ProviderSensorRecord is the raw, read-only sensor record as returned by the
// telemetry provider. It is never persisted.
type ProviderSensorRecord struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	LastSeen       *time.Time `json:"lastSeen,omitempty"`
	BatteryLevel   *int       `json:"batteryLevel,omitempty"`
	SignalStrength *int       `json:"signalStrength,omitempty"`
}

// ProviderGatewayRecord is the raw, read-only gateway record as returned by
// the telemetry provider.
type ProviderGatewayRecord struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	LastSeen       *time.Time `json:"lastSeen,omitempty"`
	SignalStrength *int       `json:"signalStrength,omitempty"`
}

// Reading is a single time-stamped measurement for a sensor.
type Reading struct {
	Timestamp   time.Time `json:"timestamp"`
	Temperature *float64  `json:"temperature,omitempty"`
	Humidity    *float64  `json:"humidity,omitempty"`
}

type ConnectivityStatus string

const (
	StatusOnline  ConnectivityStatus = "online"
	StatusWarning ConnectivityStatus = "warning"
	StatusOffline ConnectivityStatus = "offline"
)

// GatewayView is the gateway half of an enriched sensor view. Nil when no
// gateway could be matched to the sensor's site.
type GatewayView struct {
	ID             string             `json:"id"`
	Name           string             `json:"name"`
	Status         ConnectivityStatus `json:"status"`
	SignalStrength int                `json:"signalStrength"`
}

// EnrichedSensorView joins an assignment with its provider record, resolved
// site, gateway, liveness classification and current metrics. It is derived
// per request and never persisted.
type EnrichedSensorView struct {
	AssignmentID     string             `json:"assignmentID"`
	ProviderSensorID string             `json:"providerSensorID"`
	Name             string             `json:"name,omitempty"`
	Site             *Site              `json:"site,omitempty"`
	LocationType     string             `json:"locationType,omitempty"`
	Status           ConnectivityStatus `json:"status"`
	LastSeen         *time.Time         `json:"lastSeen,omitempty"`
	Reading          *Reading           `json:"reading,omitempty"`
	BatteryLevel     int                `json:"batteryLevel"`
	SignalStrength   int                `json:"signalStrength"`
	Gateway          *GatewayView       `json:"gateway,omitempty"`
}

const (
	AlertTypeTemperature  = "temperature"
	AlertTypeHumidity     = "humidity"
	AlertTypeConnectivity = "connectivity"
)

type AlertSeverity int

const (
	SeverityInfo     AlertSeverity = 1
	SeverityWarning  AlertSeverity = 2
	SeverityCritical AlertSeverity = 3
)

func (s AlertSeverity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityCritical:
		return "critical"
	}
	return "unknown"
}

// Alert is the persisted record of a threshold breach or operational event.
// Alerts are created open and transition exactly once to resolved.
type Alert struct {
	ID             string        `json:"alertID"`
	SensorID       string        `json:"sensorID,omitempty"`
	SiteID         string        `json:"siteID,omitempty"`
	AlertType      string        `json:"alertType"`
	Severity       AlertSeverity `json:"severity"`
	Message        string        `json:"message,omitempty"`
	CurrentValue   *float64      `json:"currentValue,omitempty"`
	ThresholdValue *float64      `json:"thresholdValue,omitempty"`
	Resolved       bool          `json:"resolved"`
	ResolvedAt     *time.Time    `json:"resolvedAt,omitempty"`
	ResolvedBy     string        `json:"resolvedBy,omitempty"`
	ResolvedNote   string        `json:"resolvedNote,omitempty"`
	ObservedAt     time.Time     `json:"observedAt"`
}

// AlertSummary counts alerts grouped by severity and resolution state.
type AlertSummary struct {
	Open     map[string]uint64 `json:"open"`
	Resolved map[string]uint64 `json:"resolved"`
}

type Role int

const (
	RoleUser Role = iota
	RoleAdministrator
)

// Principal is the authenticated caller. Site IDs are only meaningful for
// non administrators.
type Principal struct {
	Subject string
	Role    Role
	SiteIDs []string
}

func (p Principal) IsAdministrator() bool {
	return p.Role == RoleAdministrator
}

// Scope is the set of sites a principal may see. All is a sentinel for
// administrators so the full site list is never materialized just to filter.
func (p Principal) Scope() Scope {
	if p.IsAdministrator() {
		return Scope{All: true}
	}
	return Scope{SiteIDs: p.SiteIDs}
}

type Scope struct {
	All     bool
	SiteIDs []string
}

func (s Scope) Allows(siteID string) bool {
	if s.All {
		return true
	}
	for _, id := range s.SiteIDs {
		if id == siteID {
			return true
		}
	}
	return false
}

// SystemPrincipal is used by in-process callers such as the watchdog.
var SystemPrincipal = Principal{Subject: "system", Role: RoleAdministrator}

type Collection[T any] struct {
	Data       []T
	Count      uint64
	Offset     uint64
	Limit      uint64
	TotalCount uint64
}
