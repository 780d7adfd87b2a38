package main

import (
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/kanmwangi2/Cheetah-Payroll-sub000/internal/app"
)

func main() {
	_ = godotenv.Load()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	if err := app.RunConsumer(); err != nil {
		logger.Fatal("run consumer failed", zap.Error(err))
	}
}
