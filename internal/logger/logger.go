package logger

import (
    "time"

    "github.com/natefinch/lumberjack"
    logrus "github.com/sirupsen/logrus"
)

// Setup initializes Logrus output via a rotating file.
func Setup(filename string) {
    rotator := &lumberjack.Logger{
        Filename:   filename,
        MaxSize:    10, // megabytes
        MaxBackups: 7,  // keep up to 7 old files
        MaxAge:     7,  // days
        Compress:   true,
    }

    logrus.SetOutput(rotator)
    logrus.SetFormatter(&logrus.TextFormatter{
        FullTimestamp:   true,
        TimestampFormat: time.RFC3339,
    })
    logrus.SetLevel(logrus.InfoLevel)
}
