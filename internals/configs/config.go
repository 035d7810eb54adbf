package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	JWTSecret        string
	CronSecret       string
	TelegramBotToken string
	TelegramChatID   string
	TelegramAPIBase  string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
		} else {
			log.Println("✅ .env file berhasil dimuat!")
		}
	} else {
		log.Println("🚀 Running in Railway, menggunakan ENV dari sistem")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	CronSecret = GetEnv("CRON_SECRET")
	TelegramBotToken = GetEnv("TELEGRAM_BOT_TOKEN")
	TelegramChatID = GetEnv("TELEGRAM_CHAT_ID")
	TelegramAPIBase = GetEnv("TELEGRAM_API_BASE", "https://api.telegram.org")

	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET belum diset!")
	} else {
		log.Println("✅ JWT_SECRET berhasil dimuat.")
	}

	if CronSecret == "" {
		log.Println("❌ CRON_SECRET belum diset! Endpoint cron akan menolak semua request.")
	} else {
		log.Println("✅ CRON_SECRET berhasil dimuat.")
	}

	if TelegramBotToken == "" || TelegramChatID == "" {
		log.Println("⚠️ Kredensial Telegram belum lengkap, alert Telegram tidak akan terkirim.")
	} else {
		log.Println("✅ Kredensial Telegram berhasil dimuat.")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}
