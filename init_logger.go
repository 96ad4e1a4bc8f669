// Package main — Logger kurulumu.
package main

import (
	"os"

	"github.com/akinalp/wpsync/config"
	"github.com/sirupsen/logrus"
)

// initLogger, global logrus logger'ını config'e göre ayarlar ve döner.
// Paketler logrus.WithField("component", ...) ile aynı logger'ı kullanır.
func initLogger(cfg config.LogConfig) *logrus.Logger {
	logger := logrus.StandardLogger()
	logger.SetOutput(os.Stdout)

	if cfg.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	return logger
}
