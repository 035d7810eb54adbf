package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"emoclass_backend/internals/configs"
)

// TelegramClient mengirim pesan alert ke bot Telegram sekolah.
// Pengiriman best-effort: gagal kirim hanya mengembalikan false, tidak
// pernah menggagalkan penyimpanan notifikasi.
type TelegramClient struct {
	BaseURL  string
	BotToken string
	ChatID   string
	HTTP     *http.Client
}

func NewTelegramClient(baseURL, botToken, chatID string, httpClient *http.Client) *TelegramClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &TelegramClient{
		BaseURL:  baseURL,
		BotToken: botToken,
		ChatID:   chatID,
		HTTP:     httpClient,
	}
}

func NewTelegramClientFromEnv() *TelegramClient {
	return NewTelegramClient(
		configs.TelegramAPIBase,
		configs.TelegramBotToken,
		configs.TelegramChatID,
		nil,
	)
}

// Template pesan alert (bahasa Indonesia, format tetap)
const alertMessageTemplate = `🚨 EMOCLASS ALERT - PERLU PERHATIAN KHUSUS

👤 Siswa: %s
📚 Kelas: %s
😔 Pola: Emosi sedih/tertekan selama 3 hari berturut-turut

⚠️ REKOMENDASI TINDAK LANJUT:
1. 🗣️ Lakukan konseling individual segera
2. 🏠 Hubungi orang tua/wali untuk koordinasi
3. 👥 Pertimbangkan sesi kelompok dukungan sebaya
4. 📋 Evaluasi faktor akademik atau sosial yang mungkin menjadi penyebab
5. 💚 Pantau perkembangan emosi harian

📅 Tindakan: Jadwalkan pertemuan dalam 1-2 hari kerja
⏰ Prioritas: TINGGI`

// SendStressAlert mengirim pesan alert 3-hari-berturut ke chat guru BK.
// Return false kalau kredensial kosong, request gagal, atau respon non-2xx.
func (t *TelegramClient) SendStressAlert(studentName, className string) bool {
	if t.BotToken == "" || t.ChatID == "" {
		log.Println("❌ Kredensial Telegram belum dikonfigurasi")
		return false
	}

	text := fmt.Sprintf(alertMessageTemplate, studentName, className)
	payload, err := json.Marshal(map[string]string{
		"chat_id": t.ChatID,
		"text":    text,
	})
	if err != nil {
		log.Printf("❌ Gagal marshal payload Telegram: %v", err)
		return false
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", t.BaseURL, t.BotToken)
	resp, err := t.HTTP.Post(url, "application/json", bytes.NewReader(payload))
	if err != nil {
		log.Printf("❌ Gagal kirim alert Telegram: %v", err)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		log.Printf("❌ Telegram API error (%d): %s", resp.StatusCode, string(body))
		return false
	}

	log.Println("✅ Alert Telegram terkirim!")
	return true
}
