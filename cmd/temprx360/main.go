package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vineetparikh-rph/temprx360/internal/pkg/application/alerts"
	"github.com/vineetparikh-rph/temprx360/internal/pkg/application/monitoring"
	"github.com/vineetparikh-rph/temprx360/internal/pkg/application/watchdog"
	"github.com/vineetparikh-rph/temprx360/internal/pkg/infrastructure/router"
	"github.com/vineetparikh-rph/temprx360/internal/pkg/infrastructure/sensorbridge"
	"github.com/vineetparikh-rph/temprx360/internal/pkg/infrastructure/storage"
	"github.com/vineetparikh-rph/temprx360/internal/pkg/presentation/api"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/go-chi/jwtauth/v5"
)

const serviceName string = "temprx360"

type flagType int
type flagMap map[flagType]string

const (
	listenAddress flagType = iota
	servicePort

	thresholdsFile
	sitesFile
	assignmentsFile

	dbHost
	dbUser
	dbPassword
	dbPort
	dbName
	dbSSLMode

	providerURL
	providerToken

	tokenSecret
	watchdogInterval
	demomode
)

func defaultFlags() flagMap {
	return flagMap{
		listenAddress: "0.0.0.0",
		servicePort:   "8080",

		thresholdsFile:  "/opt/temprx360/config/thresholds.yaml",
		sitesFile:       "/opt/temprx360/config/sites.csv",
		assignmentsFile: "/opt/temprx360/config/assignments.csv",

		dbHost:     "",
		dbUser:     "",
		dbPassword: "",
		dbPort:     "5432",
		dbName:     "temprx",
		dbSSLMode:  "disable",

		providerURL:   "",
		providerToken: "",

		tokenSecret:      "",
		watchdogInterval: "5m",
		demomode:         "false",
	}
}

func main() {
	ctx, flags := parseExternalConfig(context.Background(), defaultFlags())

	serviceVersion := buildinfo.SourceVersion()
	ctx, logger, cleanup := o11y.Init(ctx, serviceName, serviceVersion, "json")
	defer cleanup()

	policy := alerts.DefaultPolicy()
	if f, err := os.Open(flags[thresholdsFile]); err == nil {
		policy, err = alerts.NewPolicy(f)
		exitIf(err, logger, "could not parse threshold policy")
	} else {
		logger.Info("no threshold policy file found, using defaults", "file", flags[thresholdsFile])
	}

	s, err := storage.New(ctx, storage.NewConfig(
		flags[dbHost], flags[dbUser], flags[dbPassword], flags[dbPort], flags[dbName], flags[dbSSLMode],
	))
	exitIf(err, logger, "could not connect to database")

	err = s.Initialize(ctx)
	exitIf(err, logger, "could not initialize database")

	seed(ctx, logger, s, flags)

	messenger, err := messaging.Initialize(ctx, messaging.LoadConfiguration(ctx, serviceName, logger))
	exitIf(err, logger, "failed to init messenger")
	messenger.Start()

	bridge := newSensorBridge(ctx, flags)

	monitor := monitoring.New(s, bridge)
	alertSvc := alerts.New(s, monitor, messenger, policy)

	interval, err := time.ParseDuration(flags[watchdogInterval])
	exitIf(err, logger, "invalid watchdog interval")

	wd := watchdog.New(alertSvc, interval)
	wd.Start(ctx)

	tokenAuth := jwtauth.New("HS256", []byte(flags[tokenSecret]), nil)

	r := router.New(serviceName)
	_, err = api.RegisterHandlers(ctx, r, tokenAuth, monitor, alertSvc, s)
	exitIf(err, logger, "failed to register handlers")

	apiAddress := flags[listenAddress] + ":" + flags[servicePort]
	webServer := &http.Server{Addr: apiAddress, Handler: r}

	logger.Info("starting to listen for incoming connections", "address", apiAddress)

	go func() {
		if err := webServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "err", err.Error())
			os.Exit(1)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	wd.Stop(shutdownCtx)
	if err := webServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "err", err.Error())
	}
	messenger.Close()
	s.Close()
}

func newSensorBridge(ctx context.Context, flags flagMap) sensorbridge.Client {
	log := logging.GetFromContext(ctx)

	if flags[demomode] == "true" {
		log.Warn("running with a demo telemetry provider, no real sensors will be read")
		return sensorbridge.NewDemo(time.Now)
	}

	return sensorbridge.New(flags[providerURL], flags[providerToken])
}

func seed(ctx context.Context, logger *slog.Logger, s *storage.Storage, flags flagMap) {
	if f, err := os.Open(flags[sitesFile]); err == nil {
		exitIf(storage.SeedSites(ctx, s, f), logger, "could not seed sites")
	}
	if f, err := os.Open(flags[assignmentsFile]); err == nil {
		exitIf(storage.SeedAssignments(ctx, s, f), logger, "could not seed assignments")
	}
}

func parseExternalConfig(ctx context.Context, flags flagMap) (context.Context, flagMap) {
	// Allow environment variables to override certain defaults
	envOrDef := env.GetVariableOrDefault

	flags[listenAddress] = envOrDef(ctx, "LISTEN_ADDRESS", flags[listenAddress])
	flags[servicePort] = envOrDef(ctx, "SERVICE_PORT", flags[servicePort])

	flags[dbHost] = envOrDef(ctx, "POSTGRES_HOST", flags[dbHost])
	flags[dbPort] = envOrDef(ctx, "POSTGRES_PORT", flags[dbPort])
	flags[dbName] = envOrDef(ctx, "POSTGRES_DBNAME", flags[dbName])
	flags[dbUser] = envOrDef(ctx, "POSTGRES_USER", flags[dbUser])
	flags[dbPassword] = envOrDef(ctx, "POSTGRES_PASSWORD", flags[dbPassword])
	flags[dbSSLMode] = envOrDef(ctx, "POSTGRES_SSLMODE", flags[dbSSLMode])

	flags[providerURL] = envOrDef(ctx, "PROVIDER_URL", flags[providerURL])
	flags[providerToken] = envOrDef(ctx, "PROVIDER_TOKEN", flags[providerToken])

	flags[tokenSecret] = envOrDef(ctx, "TOKEN_SECRET", flags[tokenSecret])
	flags[watchdogInterval] = envOrDef(ctx, "WATCHDOG_INTERVAL", flags[watchdogInterval])

	apply := func(f flagType) func(string) error {
		return func(value string) error {
			flags[f] = value
			return nil
		}
	}

	// Allow command line arguments to override defaults and environment variables
	flag.Func("thresholds", "a threshold policy file", apply(thresholdsFile))
	flag.Func("sites", "list of known sites", apply(sitesFile))
	flag.Func("assignments", "list of sensor assignments", apply(assignmentsFile))
	flag.Func("demomode", "run against a built in demo telemetry provider", apply(demomode))
	flag.Parse()

	return ctx, flags
}

func exitIf(err error, logger *slog.Logger, msg string, args ...any) {
	if err != nil {
		logger.With(args...).Error(msg, "err", err.Error())
		time.Sleep(2 * time.Second)
		os.Exit(1)
	}
}
