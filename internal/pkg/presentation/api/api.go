package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"log/slog"

	"github.com/vineetparikh-rph/temprx360/internal/pkg/application/alerts"
	"github.com/vineetparikh-rph/temprx360/internal/pkg/application/monitoring"
	"github.com/vineetparikh-rph/temprx360/internal/pkg/infrastructure/sensorbridge"
	"github.com/vineetparikh-rph/temprx360/internal/pkg/infrastructure/storage"
	"github.com/vineetparikh-rph/temprx360/internal/pkg/presentation/api/auth"
	"github.com/vineetparikh-rph/temprx360/pkg/types"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("temprx360/api")

// SiteRegistry is the site and assignment administration surface of the
// storage layer.
//
//go:generate moq -rm -out siteregistry_mock.go . SiteRegistry
type SiteRegistry interface {
	AddSite(ctx context.Context, site types.Site) error
	UpdateSite(ctx context.Context, site types.Site) error
	QuerySites(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Site], error)
	AddAssignment(ctx context.Context, a types.SensorAssignment) error
	SetAssignmentActive(ctx context.Context, assignmentID string, active bool) error
	GetAssignment(ctx context.Context, conditions ...storage.ConditionFunc) (types.SensorAssignment, error)
	QueryAssignments(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.SensorAssignment], error)
}

func RegisterHandlers(ctx context.Context, router *chi.Mux, tokenAuth *jwtauth.JWTAuth, monitor monitoring.SensorMonitor, alertSvc alerts.AlertService, registry SiteRegistry) (*chi.Mux, error) {

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	router.Method(http.MethodGet, "/metrics", promhttp.Handler())

	log := logging.GetFromContext(ctx)

	authenticator := auth.NewAuthenticator(ctx, tokenAuth)

	router.Route("/api/v0", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(authenticator)

			r.Get("/sensors", querySensorsHandler(log, monitor))

			r.Route("/alerts", func(r chi.Router) {
				r.Get("/", queryAlertsHandler(log, alertSvc))
				r.Post("/", createAlertHandler(log, alertSvc))
				r.Get("/summary", alertSummaryHandler(log, alertSvc))
				r.Post("/check", checkAllSensorsHandler(log, alertSvc))
				r.Patch("/{alertID}", resolveAlertHandler(log, alertSvc))
			})

			r.Route("/sites", func(r chi.Router) {
				r.Get("/", querySitesHandler(log, registry))
				r.Post("/", createSiteHandler(log, registry))
				r.Patch("/{siteID}", updateSiteHandler(log, registry))
			})

			r.Route("/assignments", func(r chi.Router) {
				r.Get("/", queryAssignmentsHandler(log, registry))
				r.Post("/", createAssignmentHandler(log, registry))
				r.Get("/{assignmentID}", getAssignmentHandler(log, registry))
				r.Patch("/{assignmentID}", patchAssignmentHandler(log, registry))
			})
		})
	})

	return router, nil
}

func querySensorsHandler(log *slog.Logger, monitor monitoring.SensorMonitor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "query-sensors")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		principal := auth.GetPrincipalFromContext(ctx)

		views, err := monitor.Aggregate(ctx, principal)
		if err != nil {
			if errors.Is(err, sensorbridge.ErrProviderUnavailable) {
				requestLogger.Error("telemetry provider unavailable", "err", err.Error())
				w.WriteHeader(http.StatusBadGateway)
				return
			}
			requestLogger.Error("could not aggregate sensor views", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, views)
	}
}

func queryAlertsHandler(log *slog.Logger, svc alerts.AlertService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "query-alerts")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		principal := auth.GetPrincipalFromContext(ctx)

		conditions := []storage.ConditionFunc{}

		q := r.URL.Query()
		if resolved := q.Get("resolved"); resolved != "" {
			b, err := strconv.ParseBool(resolved)
			if err != nil {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			conditions = append(conditions, storage.WithResolved(b))
		}
		if siteID := q.Get("siteID"); siteID != "" {
			conditions = append(conditions, storage.WithSiteID(siteID))
		}
		if sensorID := q.Get("sensorID"); sensorID != "" {
			conditions = append(conditions, storage.WithSensorID(sensorID))
		}
		if alertType := q.Get("type"); alertType != "" {
			conditions = append(conditions, storage.WithAlertType(alertType))
		}
		if sortBy := q.Get("sort"); sortBy != "" {
			conditions = append(conditions, storage.WithSortBy(sortBy))
		}
		if desc := q.Get("desc"); desc != "" {
			b, err := strconv.ParseBool(desc)
			if err != nil {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			conditions = append(conditions, storage.WithSortDesc(b))
		}
		conditions = append(conditions, storage.WithOffset(offsetFrom(q.Get("offset"))), storage.WithLimit(limitFrom(q.Get("limit"))))

		collection, err := svc.Query(ctx, principal, conditions...)
		if err != nil {
			requestLogger.Error("could not fetch alerts", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, collection)
	}
}

func createAlertHandler(log *slog.Logger, svc alerts.AlertService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "create-alert")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		principal := auth.GetPrincipalFromContext(ctx)

		body, err := io.ReadAll(r.Body)
		if err != nil {
			requestLogger.Error("unable to read body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		var alert types.Alert
		err = json.Unmarshal(body, &alert)
		if err != nil {
			requestLogger.Error("unable to unmarshal body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		created, err := svc.Create(ctx, principal, alert)
		if err != nil {
			switch {
			case errors.Is(err, alerts.ErrForbidden):
				w.WriteHeader(http.StatusForbidden)
			case errors.Is(err, storage.ErrSingleOpenAlert):
				w.WriteHeader(http.StatusConflict)
			default:
				requestLogger.Error("unable to create alert", "err", err.Error())
				w.WriteHeader(http.StatusBadRequest)
			}
			return
		}

		writeJSON(w, http.StatusCreated, created)
	}
}

func resolveAlertHandler(log *slog.Logger, svc alerts.AlertService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "resolve-alert")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		principal := auth.GetPrincipalFromContext(ctx)

		alertID := chi.URLParam(r, "alertID")
		if alertID != "" {
			requestLogger = requestLogger.With(slog.String("alert_id", alertID))
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		resolution := struct {
			ResolvedBy string `json:"resolvedBy"`
			Note       string `json:"note"`
		}{}
		err = json.Unmarshal(body, &resolution)
		if err != nil || resolution.ResolvedBy == "" {
			requestLogger.Error("invalid resolution body")
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		err = svc.Resolve(ctx, principal, alertID, resolution.ResolvedBy, resolution.Note)
		if err != nil {
			switch {
			case errors.Is(err, alerts.ErrAlertNotFound):
				w.WriteHeader(http.StatusNotFound)
			case errors.Is(err, alerts.ErrForbidden):
				w.WriteHeader(http.StatusForbidden)
			case errors.Is(err, storage.ErrAlreadyResolved):
				w.WriteHeader(http.StatusConflict)
			default:
				requestLogger.Error("unable to resolve alert", "err", err.Error())
				w.WriteHeader(http.StatusInternalServerError)
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func alertSummaryHandler(log *slog.Logger, svc alerts.AlertService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "alert-summary")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		principal := auth.GetPrincipalFromContext(ctx)

		summary, err := svc.Summary(ctx, principal)
		if err != nil {
			requestLogger.Error("could not fetch alert summary", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, summary)
	}
}

func checkAllSensorsHandler(log *slog.Logger, svc alerts.AlertService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "check-all-sensors")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		principal := auth.GetPrincipalFromContext(ctx)
		if !principal.IsAdministrator() {
			w.WriteHeader(http.StatusForbidden)
			return
		}

		err = svc.CheckAllSensors(ctx)
		if err != nil {
			if errors.Is(err, sensorbridge.ErrProviderUnavailable) {
				w.WriteHeader(http.StatusBadGateway)
				return
			}
			requestLogger.Error("sensor check failed", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func querySitesHandler(log *slog.Logger, registry SiteRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "query-sites")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		principal := auth.GetPrincipalFromContext(ctx)

		conditions := []storage.ConditionFunc{storage.WithScope(principal.Scope())}

		q := r.URL.Query()
		if sortBy := q.Get("sort"); sortBy != "" {
			conditions = append(conditions, storage.WithSortBy(sortBy))
		}
		if desc := q.Get("desc"); desc != "" {
			b, err := strconv.ParseBool(desc)
			if err != nil {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			conditions = append(conditions, storage.WithSortDesc(b))
		}

		sites, err := registry.QuerySites(ctx, conditions...)
		if err != nil {
			requestLogger.Error("could not fetch sites", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, sites)
	}
}

func createSiteHandler(log *slog.Logger, registry SiteRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "create-site")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		principal := auth.GetPrincipalFromContext(ctx)
		if !principal.IsAdministrator() {
			w.WriteHeader(http.StatusForbidden)
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		var site types.Site
		err = json.Unmarshal(body, &site)
		if err != nil || site.Code == "" {
			requestLogger.Error("invalid site body")
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		if site.ID == "" {
			site.ID = uuid.NewString()
		}

		err = registry.AddSite(ctx, site)
		if err != nil {
			if errors.Is(err, storage.ErrAlreadyExists) {
				w.WriteHeader(http.StatusConflict)
				return
			}
			requestLogger.Error("unable to create site", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, site)
	}
}

func updateSiteHandler(log *slog.Logger, registry SiteRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "update-site")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		principal := auth.GetPrincipalFromContext(ctx)
		if !principal.IsAdministrator() {
			w.WriteHeader(http.StatusForbidden)
			return
		}

		siteID := chi.URLParam(r, "siteID")

		body, err := io.ReadAll(r.Body)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		patch := struct {
			Name string `json:"name"`
		}{}
		err = json.Unmarshal(body, &patch)
		if err != nil || patch.Name == "" {
			requestLogger.Error("invalid site patch")
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		err = registry.UpdateSite(ctx, types.Site{ID: siteID, Name: patch.Name})
		if err != nil {
			if errors.Is(err, storage.ErrNoRows) {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			requestLogger.Error("unable to update site", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func queryAssignmentsHandler(log *slog.Logger, registry SiteRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "query-assignments")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		principal := auth.GetPrincipalFromContext(ctx)

		conditions := []storage.ConditionFunc{storage.WithScope(principal.Scope())}

		q := r.URL.Query()
		if siteID := q.Get("siteID"); siteID != "" {
			conditions = append(conditions, storage.WithSiteID(siteID))
		}
		if providerSensorID := q.Get("providerSensorID"); providerSensorID != "" {
			conditions = append(conditions, storage.WithProviderSensorID(providerSensorID))
		}

		assignments, err := registry.QueryAssignments(ctx, conditions...)
		if err != nil {
			requestLogger.Error("could not fetch assignments", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, assignments)
	}
}

func createAssignmentHandler(log *slog.Logger, registry SiteRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "create-assignment")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		principal := auth.GetPrincipalFromContext(ctx)
		if !principal.IsAdministrator() {
			w.WriteHeader(http.StatusForbidden)
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		var a types.SensorAssignment
		err = json.Unmarshal(body, &a)
		if err != nil || a.ProviderSensorID == "" || a.SiteID == "" {
			requestLogger.Error("invalid assignment body")
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		if a.ID == "" {
			a.ID = uuid.NewString()
		}
		a.Active = true

		err = registry.AddAssignment(ctx, a)
		if err != nil {
			if errors.Is(err, storage.ErrAlreadyExists) {
				w.WriteHeader(http.StatusConflict)
				return
			}
			requestLogger.Error("unable to create assignment", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, a)
	}
}

func getAssignmentHandler(log *slog.Logger, registry SiteRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "get-assignment")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		principal := auth.GetPrincipalFromContext(ctx)

		assignmentID := chi.URLParam(r, "assignmentID")

		a, err := registry.GetAssignment(ctx, storage.WithAssignmentID(assignmentID), storage.WithScope(principal.Scope()))
		if err != nil {
			if errors.Is(err, storage.ErrNoRows) {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			requestLogger.Error("could not fetch assignment", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, a)
	}
}

func patchAssignmentHandler(log *slog.Logger, registry SiteRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "patch-assignment")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		principal := auth.GetPrincipalFromContext(ctx)
		if !principal.IsAdministrator() {
			w.WriteHeader(http.StatusForbidden)
			return
		}

		assignmentID := chi.URLParam(r, "assignmentID")

		body, err := io.ReadAll(r.Body)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		patch := struct {
			Active *bool `json:"active"`
		}{}
		err = json.Unmarshal(body, &patch)
		if err != nil || patch.Active == nil {
			requestLogger.Error("invalid assignment patch")
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		err = registry.SetAssignmentActive(ctx, assignmentID, *patch.Active)
		if err != nil {
			if errors.Is(err, storage.ErrNoRows) {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			requestLogger.Error("unable to update assignment", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func writeJSON(w http.ResponseWriter, statusCode int, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(b)
}

func offsetFrom(s string) int {
	if n, err := strconv.Atoi(s); err == nil && n >= 0 {
		return n
	}
	return 0
}

func limitFrom(s string) int {
	if n, err := strconv.Atoi(s); err == nil && n > 0 && n <= 1000 {
		return n
	}
	return 100
}
