package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"googlemaps.github.io/maps"

	"github.com/RichardKnop/machinery/v1"
	machineryconf "github.com/RichardKnop/machinery/v1/config"
	"github.com/getsentry/sentry-go"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"

	"github.com/lifeline-bd/lifeline-api/api"
	"github.com/lifeline-bd/lifeline-api/background"
	"github.com/lifeline-bd/lifeline-api/external/authprovider"
	"github.com/lifeline-bd/lifeline-api/geo"
	"github.com/lifeline-bd/lifeline-api/store"
	"github.com/lifeline-bd/lifeline-api/tracking"
	"github.com/lifeline-bd/lifeline-api/utils"
)

var (
	server      *api.Server
	ormDB       *gorm.DB
	mongoClient *mongo.Client
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
	viper.SetEnvPrefix("lifeline")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func trackerConfig() tracking.Config {
	config := tracking.DefaultConfig()
	if v := viper.GetFloat64("tracking.reroute_threshold"); v > 0 {
		config.RerouteThreshold = v
	}
	if v := viper.GetFloat64("tracking.arrival_radius"); v > 0 {
		config.ArrivalRadius = v
	}
	if v := viper.GetFloat64("tracking.fallback_speed"); v > 0 {
		config.FallbackSpeed = v * 1000 / 3600
	}
	return config
}

// positionLog keeps route positions in mongodb when it is configured and in
// postgres otherwise
func positionLog(ctx context.Context) store.PositionLog {
	if viper.GetString("mongo.conn") == "" {
		log.WithField("prefix", "init").Info("Position log is kept in postgres")
		return store.NewOrmPositionLog(ormDB)
	}

	opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
	opts.SetMaxPoolSize(viper.GetUint64("mongo.pool"))

	var err error
	mongoClient, err = mongo.NewClient(opts)
	if nil != err {
		log.Panicf("create mongo client with error: %s", err)
	}

	if err := mongoClient.Connect(ctx); nil != err {
		log.Panicf("connect mongo database with error: %s", err)
	}

	positions := store.NewMongoPositionLog(mongoClient, viper.GetString("mongo.database"))
	if err := positions.EnsureIndexes(ctx); err != nil {
		log.WithField("prefix", "init").WithError(err).Warn("cannot ensure position indexes")
	}

	log.WithField("prefix", "init").Info("Position log is kept in mongodb")
	return positions
}

func dispatcher() background.Dispatcher {
	if viper.GetBool("services.mock") {
		log.WithField("prefix", "init").Warn("Background jobs are mocked")
		return background.LogDispatcher{}
	}

	var conf = &machineryconf.Config{
		Broker:        viper.GetString("redis.conn"),
		DefaultQueue:  "lifeline_background",
		ResultBackend: viper.GetString("redis.conn"),
	}
	machineryServer, err := machinery.NewServer(conf)
	if err != nil {
		log.Panic(err)
	}

	return background.NewTaskDispatcher(machineryServer)
}

// mapServices returns the directions and geocoding providers. Without a maps
// key paths are straight lines and districts are not resolved.
func mapServices(tracker *tracking.Tracker) (geo.Router, geo.DistrictResolver) {
	key := viper.GetString("maps.api_key")
	if key == "" || viper.GetBool("services.mock") {
		log.WithField("prefix", "init").Warn("Maps are not configured. Use straight line routes")
		return geo.NewStraightRouter(tracker), nil
	}

	client, err := maps.NewClient(maps.WithAPIKey(key))
	if err != nil {
		log.Panic(err)
	}

	return geo.NewGoogleRouter(client), geo.NewGeocodingDistrictResolver(client)
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

		if mongoClient != nil {
			log.Info("Shutting down mongo store")
			if err := mongoClient.Disconnect(ctx); err != nil {
				log.Error(err)
			}
		}

		sentry.Flush(5 * time.Second)

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

	utils.InitI18NBundle()
	log.WithField("prefix", "init").Info("Loaded i18n messages")

	if viper.GetString("auth.jwt_secret") == "" {
		log.WithField("prefix", "init").Warn("No jwt secret. Every session is verified by the auth provider")
	}

	var err error
	ormDB, err = gorm.Open("postgres", viper.GetString("orm.conn"))
	if err != nil {
		log.Panic(err)
	}

	tracker := tracking.NewTracker(trackerConfig())
	router, resolver := mapServices(tracker)

	// Init http server
	server = api.NewServer(
		store.NewLifelineStore(ormDB),
		positionLog(initialCtx),
		authprovider.New(viper.GetString("auth.url"), viper.GetString("auth.anon_key")),
		router,
		resolver,
		dispatcher(),
		tracker)
	log.WithField("prefix", "init").Info("Initialized http server")

	// Remove initial context
	initialCtx = nil
	cancelInitialization = nil

	log.Fatal(server.Run(":" + viper.GetString("server.port")))
}
