package main

import (
	"Fleet/Alerts"
	"Fleet/CronJobs"
	"Fleet/FiberConfig"
	"Fleet/Models"
	"log"
	"os"

	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
)

func main() {
	setupLogging()

	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file loaded:", err)
	}

	Models.Connect()

	go func() {
		if err := Alerts.InitFirebase(); err != nil {
			log.Println("Firebase init failed, push notifications disabled:", err)
		}
		scheduler := CronJobs.NewScheduler(Models.DB, os.Getenv("RUN_JOBS_ON_START") == "true")
		scheduler.Start()
	}()

	FiberConfig.FiberConfig()
}

func setupLogging() {
	if err := os.MkdirAll("logs", 0755); err != nil {
		log.Println("Error creating logs directory:", err)
		return
	}

	logFile, err := os.OpenFile("logs/application.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Println("Error opening log file:", err)
		return
	}

	log.SetOutput(logFile)
	log.SetFlags(log.Ldate | log.Ltime)
}
