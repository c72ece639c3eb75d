package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/DenethorandEddie/Mahalle/api"
	"github.com/DenethorandEddie/Mahalle/schema"
	"github.com/DenethorandEddie/Mahalle/store"
)

func initConfig() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/mahalle")

	viper.SetEnvPrefix("mahalle")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("server.address", ":8080")
	viper.SetDefault("mongo.database", "mahalle")
	viper.SetDefault("log.level", "info")

	if err := viper.ReadInConfig(); err != nil {
		logrus.WithError(err).Warn("no config file loaded, using environment")
	}
}

func initLog() {
	level, err := logrus.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
}

func main() {
	initConfig()
	initLog()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(viper.GetString("mongo.conn")))
	if err != nil {
		logrus.WithError(err).Fatal("connect to mongodb")
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		logrus.WithError(err).Fatal("ping mongodb")
	}

	database := viper.GetString("mongo.database")

	indexer := schema.NewMongoDBIndexer(viper.GetString("mongo.conn"), database)
	if err := indexer.IndexAll(); err != nil {
		logrus.WithError(err).Fatal("build mongodb indexes")
	}

	mahalleStore := store.NewMongoStore(client, database)

	server := api.NewServer(mahalleStore, viper.GetBool("server.trace"))

	done := make(chan os.Signal, 1)
	signal.Notify(done, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-done
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logrus.WithError(err).Error("shutdown api server")
		}
	}()

	logrus.WithField("address", viper.GetString("server.address")).Info("starting api server")
	if err := server.Run(viper.GetString("server.address")); err != nil {
		logrus.WithError(err).Info("api server stopped")
	}
}
