package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/youruser/promocollage/internal/collage"
	"github.com/youruser/promocollage/internal/config"
)

func main() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)

	// config/config.yaml is optional; without it the stock layout is rendered
	v, err := config.LoadConfig("./config")
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}
	cfg, err := config.ParseConfig(v)
	if err != nil {
		logrus.Fatalf("Failed to parse config: %v", err)
	}
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logrus.SetLevel(level)
	} else {
		logrus.Warnf("Unknown log level %q, keeping info", cfg.LogLevel)
	}

	if _, err := collage.Run(cfg, logrus.StandardLogger()); err != nil {
		logrus.Fatalf("Failed to render collage: %v", err)
	}
}
