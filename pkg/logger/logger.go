package logger

import (
	"go.uber.org/zap"
)

var Log *zap.Logger

// Init builds the process-wide logger. Development mode gets console output,
// anything else gets production JSON.
func Init(env string) *zap.Logger {
	var (
		l   *zap.Logger
		err error
	)
	if env == "development" {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		panic(err)
	}
	Log = l
	return l
}
