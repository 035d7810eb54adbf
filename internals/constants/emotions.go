package constants

// Label emosi check-in (enum tertutup, disimpan apa adanya di DB)
const (
	EmotionHappy    = "happy"
	EmotionNormal   = "normal"
	EmotionStressed = "stressed"
)

var ValidEmotions = []string{
	EmotionHappy,
	EmotionNormal,
	EmotionStressed,
}

func IsValidEmotion(e string) bool {
	for _, v := range ValidEmotions {
		if e == v {
			return true
		}
	}
	return false
}

// Tipe & prioritas notifikasi (kontrak penyimpanan, lihat tabel notifications)
const (
	NotificationTypeAlert   = "alert"
	NotificationTypeSystem  = "system"
	NotificationTypeSummary = "summary"

	PriorityUrgent = "urgent"
	PriorityHigh   = "high"
	PriorityNormal = "normal"
	PriorityLow    = "low"
)
