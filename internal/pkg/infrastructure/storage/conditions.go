package storage

import (
	"strings"

	"github.com/vineetparikh-rph/temprx360/pkg/types"

	"github.com/jackc/pgx/v5"
)

type ConditionFunc func(*Condition) *Condition

type Condition struct {
	AlertID          string
	SensorID         string
	SiteID           string
	AssignmentID     string
	ProviderSensorID string
	Code             string

	AlertType string
	Severity  *int
	Resolved  *bool
	Active    *bool

	// scoped is set whenever a caller scope restricts visibility, so an
	// empty site list still yields an empty result rather than no filter.
	scoped  bool
	SiteIDs []string

	sortBy    string
	sortOrder string

	offset *int
	limit  *int
}

func (c Condition) SortBy() string {
	return c.sortBy
}

func (c Condition) SortOrder() string {
	if c.sortOrder == "" {
		return "ASC"
	}
	return c.sortOrder
}

func (c Condition) Offset() int {
	if c.offset != nil {
		return *c.offset
	}
	return 0
}

func (c Condition) Limit() int {
	if c.limit != nil {
		return *c.limit
	}
	return 0
}

func (c Condition) NamedArgs() pgx.NamedArgs {
	args := pgx.NamedArgs{}

	if c.AlertID != "" {
		args["alert_id"] = c.AlertID
	}
	if c.SensorID != "" {
		args["sensor_id"] = c.SensorID
	}
	if c.SiteID != "" {
		args["site_id"] = c.SiteID
	}
	if c.AssignmentID != "" {
		args["assignment_id"] = c.AssignmentID
	}
	if c.ProviderSensorID != "" {
		args["provider_sensor_id"] = c.ProviderSensorID
	}
	if c.Code != "" {
		args["code"] = c.Code
	}
	if c.AlertType != "" {
		args["alert_type"] = c.AlertType
	}
	if c.Severity != nil {
		args["severity"] = *c.Severity
	}
	if c.Resolved != nil {
		args["resolved"] = *c.Resolved
	}
	if c.Active != nil {
		args["active"] = *c.Active
	}
	if c.scoped {
		args["site_ids"] = c.SiteIDs
	}

	return args
}

func (c Condition) Where() string {
	where := []string{}

	if c.AlertID != "" {
		where = append(where, "alert_id = @alert_id")
	}
	if c.SensorID != "" {
		where = append(where, "sensor_id = @sensor_id")
	}
	if c.SiteID != "" {
		where = append(where, "site_id = @site_id")
	}
	if c.AssignmentID != "" {
		where = append(where, "assignment_id = @assignment_id")
	}
	if c.ProviderSensorID != "" {
		where = append(where, "provider_sensor_id = @provider_sensor_id")
	}
	if c.Code != "" {
		where = append(where, "code = @code")
	}
	if c.AlertType != "" {
		where = append(where, "alert_type = @alert_type")
	}
	if c.Severity != nil {
		where = append(where, "severity = @severity")
	}
	if c.Resolved != nil {
		where = append(where, "resolved = @resolved")
	}
	if c.Active != nil {
		where = append(where, "active = @active")
	}
	if c.scoped {
		where = append(where, "site_id = ANY(@site_ids)")
	}

	if len(where) == 0 {
		return ""
	}

	return "WHERE " + strings.Join(where, " AND ")
}

func WithAlertID(alertID string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.AlertID = alertID
		return c
	}
}

func WithSensorID(sensorID string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.SensorID = sensorID
		return c
	}
}

func WithSiteID(siteID string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.SiteID = siteID
		return c
	}
}

func WithAssignmentID(assignmentID string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.AssignmentID = assignmentID
		return c
	}
}

func WithProviderSensorID(providerSensorID string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.ProviderSensorID = providerSensorID
		return c
	}
}

func WithSiteCode(code string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.Code = code
		return c
	}
}

func WithAlertType(alertType string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.AlertType = alertType
		return c
	}
}

func WithResolved(resolved bool) ConditionFunc {
	return func(c *Condition) *Condition {
		c.Resolved = &resolved
		return c
	}
}

func WithActive(active bool) ConditionFunc {
	return func(c *Condition) *Condition {
		c.Active = &active
		return c
	}
}

// WithScope restricts results to the sites visible to the caller. An
// administrator scope adds no filter at all.
func WithScope(scope types.Scope) ConditionFunc {
	return func(c *Condition) *Condition {
		if scope.All {
			return c
		}
		c.scoped = true
		c.SiteIDs = scope.SiteIDs
		if c.SiteIDs == nil {
			c.SiteIDs = []string{}
		}
		return c
	}
}

func WithOffset(offset int) ConditionFunc {
	return func(c *Condition) *Condition {
		c.offset = &offset
		return c
	}
}

func WithLimit(limit int) ConditionFunc {
	return func(c *Condition) *Condition {
		c.limit = &limit
		return c
	}
}

func WithSortBy(sortBy string) ConditionFunc {
	return func(c *Condition) *Condition {
		switch strings.ToLower(sortBy) {
		case "observed_at", "observedat":
			c.sortBy = "observed_at"
		case "severity":
			c.sortBy = "severity"
		case "site_id", "siteid":
			c.sortBy = "site_id"
		case "code":
			c.sortBy = "code"
		case "name":
			c.sortBy = "name"
		}
		return c
	}
}

func WithSortDesc(desc bool) ConditionFunc {
	return func(c *Condition) *Condition {
		if desc {
			c.sortOrder = "DESC"
		} else {
			c.sortOrder = "ASC"
		}
		return c
	}
}
