package utils

import (
	"go.uber.org/zap"
)

// Log is the shared application logger. Call InitLogger before use.
var Log *zap.SugaredLogger

func InitLogger() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	Log = logger.Sugar()
}

func init() {
	// Tests and tools get a usable logger without explicit setup.
	if Log == nil {
		Log = zap.NewNop().Sugar()
	}
}
