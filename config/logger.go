package config

import (
	"io"
	"os"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/sirupsen/logrus"
)

const (
	logDir       = "logs"
	logRetention = 5
)

// InitLogger routes logrus output to the console and a daily-rotated file under
// logs/, keeping the most recent 5 files.
func InitLogger(level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	logrus.SetLevel(lvl)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return err
	}

	writer, err := rotatelogs.New(
		logDir+"/app.%Y%m%d.log",
		rotatelogs.WithLinkName(logDir+"/app.log"),
		rotatelogs.WithRotationTime(24*time.Hour),
		rotatelogs.WithRotationCount(logRetention),
	)
	if err != nil {
		return err
	}

	logrus.SetOutput(io.MultiWriter(os.Stdout, writer))
	return nil
}
