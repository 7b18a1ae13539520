package config

import (
	"log"
	"os"
)

type Config struct {
	Port           string
	DBDSN          string
	RedisURL       string
	WhatsAppNumber string
	LogFile        string
}

func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "kevina.db"
	} // sqlite file in project root
	redisURL := os.Getenv("REDIS_URL") // empty means local catalog only
	wa := os.Getenv("WHATSAPP_NUMBER")
	if wa == "" {
		wa = "94702886067" // store owner's number, digits only
	}
	logFile := os.Getenv("LOG_FILE")
	if logFile == "" {
		logFile = "./kevina.log" // default log sink in project root
	}

	cfg := Config{Port: port, DBDSN: dsn, RedisURL: redisURL, WhatsAppNumber: wa, LogFile: logFile}
	log.Printf("[config] PORT=%s DB_DSN=%s REDIS_URL=%s WHATSAPP_NUMBER=%s LOG_FILE=%s",
		cfg.Port, cfg.DBDSN, cfg.RedisURL, cfg.WhatsAppNumber, cfg.LogFile)
	return cfg
}
