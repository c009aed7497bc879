package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/getsentry/sentry-go"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/uber-go/tally"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
	"googlemaps.github.io/maps"

	"github.com/agrinet/cropguard-api/api"
	"github.com/agrinet/cropguard-api/external/messaging"
	"github.com/agrinet/cropguard-api/geo"
	"github.com/agrinet/cropguard-api/store"
	"github.com/agrinet/cropguard-api/surveillance"
	"github.com/agrinet/cropguard-api/utils"
)

var (
	server *api.Server
	ormDB  *gorm.DB
)

func initLog() {
	logLevel, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(logLevel)
	}

	log.SetOutput(os.Stdout)

	log.SetFormatter(&prefixed.TextFormatter{
		ForceFormatting: true,
		FullTimestamp:   true,
	})
}

func loadConfig(file string) {
	// Config from file
	viper.SetConfigType("yaml")
	if file != "" {
		viper.SetConfigFile(file)
	}

	viper.AddConfigPath("/.config/")
	viper.AddConfigPath(".")
	err := viper.ReadInConfig()
	if err != nil {
		fmt.Println("No config file. Read config from env.")
		viper.AllowEmptyEnv(false)
	}

	// Config from env if possible
	viper.AutomaticEnv()
	viper.SetEnvPrefix("cropguard")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetDefault("i18n.dir", "./i18n")
	viper.SetDefault("alert.radius", geo.DefaultAlertRadiusKm)
	viper.SetDefault("alert.channel_timeout", "10s")
}

// newEmailSender picks the SMTP relay when configured, otherwise a
// log-only sender.
func newEmailSender() messaging.EmailSender {
	if viper.GetString("smtp.host") == "" {
		log.WithField("prefix", "init").Warn("smtp not configured; email alerts are logged only")
		return messaging.NewLogEmailSender()
	}

	return messaging.NewSMTPEmailSender(
		viper.GetString("smtp.host"),
		viper.GetInt("smtp.port"),
		viper.GetString("smtp.username"),
		viper.GetString("smtp.password"),
		viper.GetString("smtp.from"),
	)
}

// newSMSSender picks the SMS gateway when configured, otherwise a
// log-only sender.
func newSMSSender() messaging.SMSSender {
	if viper.GetString("sms.account") == "" {
		log.WithField("prefix", "init").Warn("sms gateway not configured; sms alerts are logged only")
		return messaging.NewLogSMSSender()
	}

	return messaging.NewTwilioSMSSender(
		viper.GetString("sms.endpoint"),
		viper.GetString("sms.account"),
		viper.GetString("sms.token"),
		viper.GetString("sms.from"),
		&http.Client{Timeout: 10 * time.Second},
	)
}

func main() {
	var configFile string

	initialCtx, cancelInitialization := context.WithCancel(context.Background())

	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Info("Server is preparing to shutdown")

		if initialCtx != nil && cancelInitialization != nil {
			log.Info("Cancelling initialization")
			cancelInitialization()
			<-initialCtx.Done()
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if server != nil {
			log.Info("Shutdown api server")
			if err := server.Shutdown(ctx); err != nil {
				log.Error("Server Shutdown:", err)
			}
		}

		if ormDB != nil {
			log.Info("Shutting down db store")
			if err := ormDB.Close(); err != nil {
				log.Error(err)
			}
		}

		os.Exit(1)
	}()

	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.Parse()

	loadConfig(configFile)

	initLog()

	// Sentry
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              viper.GetString("sentry.dsn"),
		AttachStacktrace: true,
		Environment:      viper.GetString("sentry.environment"),
		Dist:             viper.GetString("sentry.dist"),
	}); err != nil {
		log.Error(err)
	}
	log.WithField("prefix", "init").Info("Initialized sentry")

	// Alert message bundle
	utils.InitI18NBundle()
	log.WithField("prefix", "init").Info("Initialized i18n bundle")

	var err error
	ormDB, err = gorm.Open("postgres", viper.GetString("orm.conn"))
	if err != nil {
		log.Panic(err)
	}

	// initialise mongodb connections
	opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
	opts.SetMaxPoolSize(viper.GetUint64("mongo.pool"))
	mongoClient, err := mongo.NewClient(opts)
	if nil != err {
		log.Panicf("create mongo client with error: %s", err)
	}

	err = mongoClient.Connect(context.Background())
	if nil != err {
		log.Panicf("connect mongo database with error: %s", err)
	}

	mongoStore := store.NewMongoStore(mongoClient, viper.GetString("mongo.database"))
	coreStore := store.NewSurveillanceStore(ormDB, mongoStore)

	// Warm the farmer index from the registry projection
	farmerIndex := geo.NewFarmerIndex(mongoStore)
	if err := farmerIndex.Refresh(); err != nil {
		log.WithField("prefix", "init").WithError(err).Error("farmer index warm-up failed")
	}

	// Reverse geocoding is optional report enrichment
	var resolver geo.LocationResolver
	if apiKey := viper.GetString("maps.apikey"); apiKey != "" {
		mapClient, err := maps.NewClient(maps.WithAPIKey(apiKey))
		if err != nil {
			log.Panicf("create maps client with error: %s", err)
		}
		resolver = geo.NewGeocodingLocationResolver(mapClient)
		log.WithField("prefix", "init").Info("Initialized location resolver")
	}

	metricScope, metricCloser := tally.NewRootScope(tally.ScopeOptions{
		Prefix: "cropguard",
	}, time.Second)
	defer metricCloser.Close()

	dispatcher := surveillance.NewDispatcher(
		newEmailSender(),
		newSMSSender(),
		viper.GetDuration("alert.channel_timeout"),
		metricScope,
	)

	orchestrator := surveillance.NewOrchestrator(
		mongoStore,
		surveillance.NewProximityMatcher(farmerIndex),
		dispatcher,
		coreStore,
		resolver,
		viper.GetFloat64("alert.radius"),
	)

	// Init http server
	server = api.NewServer(
		coreStore,
		mongoStore,
		orchestrator,
		farmerIndex)
	log.WithField("prefix", "init").Info("Initialized http server")

	// Remove initial context
	initialCtx = nil
	cancelInitialization = nil

	log.Fatal(server.Run(":" + viper.GetString("server.port")))
}
