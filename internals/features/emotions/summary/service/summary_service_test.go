package service

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"emoclass_backend/internals/constants"
	checkinModel "emoclass_backend/internals/features/emotions/checkins/model"
	notifModel "emoclass_backend/internals/features/home/notifications/model"
	classModel "emoclass_backend/internals/features/school/classes/model"
	studentModel "emoclass_backend/internals/features/school/students/model"
	userModel "emoclass_backend/internals/features/users/user/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		t.Fatalf("gagal buka sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("gagal ambil sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&userModel.UserModel{},
		&classModel.ClassModel{},
		&studentModel.StudentModel{},
		&checkinModel.EmotionCheckinModel{},
		&notifModel.NotificationModel{},
	); err != nil {
		t.Fatalf("gagal migrasi: %v", err)
	}
	return db
}

func seedTeachers(t *testing.T, db *gorm.DB, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		guru := userModel.UserModel{
			Email:    fmt.Sprintf("guru%d@sekolah.id", i),
			Password: "hashed",
			FullName: fmt.Sprintf("Guru %d", i),
			Role:     constants.RoleTeacher,
			IsActive: true,
		}
		if err := db.Create(&guru).Error; err != nil {
			t.Fatalf("gagal buat guru: %v", err)
		}
	}
}

func seedClass(t *testing.T, db *gorm.DB, name string) classModel.ClassModel {
	t.Helper()
	kelas := classModel.ClassModel{Name: name}
	if err := db.Create(&kelas).Error; err != nil {
		t.Fatalf("gagal buat kelas: %v", err)
	}
	return kelas
}

func seedStudents(t *testing.T, db *gorm.DB, classID uuid.UUID, n int) []studentModel.StudentModel {
	t.Helper()
	out := make([]studentModel.StudentModel, n)
	for i := 0; i < n; i++ {
		out[i] = studentModel.StudentModel{
			Name:    fmt.Sprintf("Siswa %s", uuid.NewString()[:8]),
			ClassID: classID,
		}
		if err := db.Create(&out[i]).Error; err != nil {
			t.Fatalf("gagal buat siswa: %v", err)
		}
	}
	return out
}

func seedCheckinAt(t *testing.T, db *gorm.DB, studentID uuid.UUID, emotion string, at time.Time) {
	t.Helper()
	ci := checkinModel.EmotionCheckinModel{
		StudentID:   studentID,
		Emotion:     emotion,
		CheckinDate: at.Format("2006-01-02"),
		CreatedAt:   at,
	}
	if err := db.Create(&ci).Error; err != nil {
		t.Fatalf("gagal buat check-in: %v", err)
	}
}

func TestRunDailySummaryNoTeachers(t *testing.T) {
	db := setupTestDB(t)
	_, err := RunDailySummary(db)
	if !errors.Is(err, ErrNoActiveTeachers) {
		t.Fatalf("err = %v, want ErrNoActiveTeachers", err)
	}
	var count int64
	db.Model(&notifModel.NotificationModel{}).Count(&count)
	if count != 0 {
		t.Errorf("tidak boleh ada notifikasi, ada %d", count)
	}
}

func TestRunDailySummaryPositiveDay(t *testing.T) {
	db := setupTestDB(t)
	seedTeachers(t, db, 2)
	kelas := seedClass(t, db, "7A")
	siswa := seedStudents(t, db, kelas.ID, 10)

	now := time.Now()
	// 7 dari 10 siswa check-in: 5 happy, 1 normal, 1 stressed
	for i := 0; i < 5; i++ {
		seedCheckinAt(t, db, siswa[i].ID, constants.EmotionHappy, now)
	}
	seedCheckinAt(t, db, siswa[5].ID, constants.EmotionNormal, now)
	seedCheckinAt(t, db, siswa[6].ID, constants.EmotionStressed, now)

	stats, err := RunDailySummary(db)
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if stats.CheckinRate != 70 {
		t.Errorf("checkin_rate = %d, want 70", stats.CheckinRate)
	}
	if stats.CheckedInCount != 7 {
		t.Errorf("checked_in = %d, want 7", stats.CheckedInCount)
	}
	if stats.Mood != "Positif 😊" {
		t.Errorf("mood = %q", stats.Mood)
	}
	if stats.TeachersNotified != 2 {
		t.Errorf("teachers_notified = %d, want 2", stats.TeachersNotified)
	}

	var notifs []notifModel.NotificationModel
	db.Find(&notifs)
	if len(notifs) != 2 {
		t.Fatalf("jumlah notifikasi = %d, want 2", len(notifs))
	}
	n := notifs[0]
	if n.NotificationTitle != "📊 Ringkasan Check-in Hari Ini" {
		t.Errorf("title = %q", n.NotificationTitle)
	}
	if n.NotificationType != constants.NotificationTypeSummary {
		t.Errorf("type = %q", n.NotificationType)
	}
	if n.NotificationPriority != constants.PriorityNormal {
		t.Errorf("priority = %q", n.NotificationPriority)
	}
	if !strings.Contains(n.NotificationMessage, "70%") {
		t.Errorf("pesan tidak berisi rate: %q", n.NotificationMessage)
	}
	if !strings.Contains(n.NotificationMessage, "1 siswa perlu perhatian") {
		t.Errorf("pesan tidak menyebut siswa stressed: %q", n.NotificationMessage)
	}
}

func TestRunDailySummaryStressedDay(t *testing.T) {
	db := setupTestDB(t)
	seedTeachers(t, db, 1)
	kelas := seedClass(t, db, "8B")
	siswa := seedStudents(t, db, kelas.ID, 3)

	now := time.Now()
	seedCheckinAt(t, db, siswa[0].ID, constants.EmotionStressed, now)
	seedCheckinAt(t, db, siswa[1].ID, constants.EmotionStressed, now)
	seedCheckinAt(t, db, siswa[2].ID, constants.EmotionHappy, now)

	stats, err := RunDailySummary(db)
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if stats.Mood != "Perlu Perhatian ⚠️" {
		t.Errorf("mood = %q", stats.Mood)
	}
}

func TestRunWeeklySummaryConcerningStudents(t *testing.T) {
	db := setupTestDB(t)
	seedTeachers(t, db, 1)
	kelas := seedClass(t, db, "7A")
	siswa := seedStudents(t, db, kelas.ID, 2)

	now := time.Now()
	// siswa[0]: 3 hari stressed dalam seminggu → perlu perhatian
	for d := 1; d <= 3; d++ {
		seedCheckinAt(t, db, siswa[0].ID, constants.EmotionStressed, now.AddDate(0, 0, -d))
	}
	// siswa[1]: hanya 2 hari stressed → belum masuk hitungan
	for d := 1; d <= 2; d++ {
		seedCheckinAt(t, db, siswa[1].ID, constants.EmotionStressed, now.AddDate(0, 0, -d))
	}

	stats, err := RunWeeklySummary(db)
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if stats.ConcerningCount != 1 {
		t.Errorf("concerning = %d, want 1", stats.ConcerningCount)
	}
	if stats.TotalCheckins != 5 {
		t.Errorf("total = %d, want 5", stats.TotalCheckins)
	}
	// 5 dari 5 negatif → 100% negatif
	if stats.NegativeRate != 100 {
		t.Errorf("negative_rate = %d, want 100", stats.NegativeRate)
	}
	// kedua siswa check-in minggu ini
	if stats.ActiveStudents != 2 || stats.ParticipationRate != 100 {
		t.Errorf("partisipasi = %d%% (%d siswa), want 100%% (2 siswa)",
			stats.ParticipationRate, stats.ActiveStudents)
	}
	if stats.Trend != "Perlu Perhatian" {
		t.Errorf("trend = %q", stats.Trend)
	}

	var n notifModel.NotificationModel
	if err := db.First(&n).Error; err != nil {
		t.Fatalf("notifikasi tidak ada: %v", err)
	}
	if n.NotificationPriority != constants.PriorityHigh {
		t.Errorf("priority = %q, want high karena ada siswa perlu perhatian", n.NotificationPriority)
	}
	if !strings.Contains(n.NotificationTitle, "Ringkasan Mingguan (7 Hari Terakhir)") {
		t.Errorf("title = %q", n.NotificationTitle)
	}
	if !strings.HasPrefix(n.NotificationTitle, "📉") {
		t.Errorf("title harus diawali emoji tren turun: %q", n.NotificationTitle)
	}
}

func TestRunWeeklySummaryPositiveTrend(t *testing.T) {
	db := setupTestDB(t)
	seedTeachers(t, db, 1)
	kelas := seedClass(t, db, "7A")
	siswa := seedStudents(t, db, kelas.ID, 1)

	now := time.Now()
	for d := 1; d <= 5; d++ {
		seedCheckinAt(t, db, siswa[0].ID, constants.EmotionHappy, now.AddDate(0, 0, -d))
	}

	stats, err := RunWeeklySummary(db)
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if stats.PositiveRate != 100 {
		t.Errorf("positive_rate = %d, want 100", stats.PositiveRate)
	}
	if stats.Trend != "Positif" {
		t.Errorf("trend = %q", stats.Trend)
	}
	// round(5/7) = 1
	if stats.AvgDaily != 1 {
		t.Errorf("avg_daily = %d, want 1", stats.AvgDaily)
	}

	var n notifModel.NotificationModel
	if err := db.First(&n).Error; err != nil {
		t.Fatalf("notifikasi tidak ada: %v", err)
	}
	if n.NotificationPriority != constants.PriorityNormal {
		t.Errorf("priority = %q, want normal", n.NotificationPriority)
	}
}

func TestRunWeeklySummaryParticipationRate(t *testing.T) {
	db := setupTestDB(t)
	seedTeachers(t, db, 1)
	kelas := seedClass(t, db, "7A")
	siswa := seedStudents(t, db, kelas.ID, 4)

	// hanya 2 dari 4 siswa yang check-in minggu ini
	now := time.Now()
	seedCheckinAt(t, db, siswa[0].ID, constants.EmotionHappy, now.AddDate(0, 0, -1))
	seedCheckinAt(t, db, siswa[1].ID, constants.EmotionNormal, now.AddDate(0, 0, -2))

	stats, err := RunWeeklySummary(db)
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if stats.TotalStudents != 4 {
		t.Errorf("total_students = %d, want 4", stats.TotalStudents)
	}
	if stats.ActiveStudents != 2 {
		t.Errorf("active_students = %d, want 2", stats.ActiveStudents)
	}
	if stats.ParticipationRate != 50 {
		t.Errorf("participation_rate = %d, want 50", stats.ParticipationRate)
	}

	var n notifModel.NotificationModel
	if err := db.First(&n).Error; err != nil {
		t.Fatalf("notifikasi tidak ada: %v", err)
	}
	if !strings.Contains(n.NotificationMessage, "Partisipasi: 50% (2/4 siswa)") {
		t.Errorf("message = %q, harus memuat angka partisipasi", n.NotificationMessage)
	}
	if !strings.Contains(string(n.NotificationMetadata), "participation_rate") {
		t.Errorf("metadata tidak berisi participation_rate: %s", n.NotificationMetadata)
	}
	if !strings.Contains(string(n.NotificationMetadata), "active_students") {
		t.Errorf("metadata tidak berisi active_students: %s", n.NotificationMetadata)
	}
}

func TestRunWeeklySummaryTrendUsesUnroundedRate(t *testing.T) {
	db := setupTestDB(t)
	seedTeachers(t, db, 1)
	kelas := seedClass(t, db, "7A")
	siswa := seedStudents(t, db, kelas.ID, 4)

	// 7 stressed dari 23 check-in = 30,43% negatif: dibulatkan jadi 30,
	// tapi tren harus tetap "Perlu Perhatian" karena rate mentah > 30.
	now := time.Now()
	for d := 0; d < 7; d++ {
		seedCheckinAt(t, db, siswa[0].ID, constants.EmotionStressed, now.AddDate(0, 0, -d))
		seedCheckinAt(t, db, siswa[1].ID, constants.EmotionNormal, now.AddDate(0, 0, -d))
		seedCheckinAt(t, db, siswa[2].ID, constants.EmotionNormal, now.AddDate(0, 0, -d))
	}
	seedCheckinAt(t, db, siswa[3].ID, constants.EmotionNormal, now)
	seedCheckinAt(t, db, siswa[3].ID, constants.EmotionNormal, now.AddDate(0, 0, -1))

	stats, err := RunWeeklySummary(db)
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if stats.TotalCheckins != 23 {
		t.Fatalf("total = %d, want 23", stats.TotalCheckins)
	}
	if stats.NegativeRate != 30 {
		t.Errorf("negative_rate = %d, want 30 (pembulatan 30,43)", stats.NegativeRate)
	}
	if stats.Trend != "Perlu Perhatian" {
		t.Errorf("trend = %q, want Perlu Perhatian", stats.Trend)
	}
}

func TestRunMissingCheckinReminderAllCheckedIn(t *testing.T) {
	db := setupTestDB(t)
	seedTeachers(t, db, 1)
	kelas := seedClass(t, db, "7A")
	siswa := seedStudents(t, db, kelas.ID, 3)

	now := time.Now()
	for i := range siswa {
		seedCheckinAt(t, db, siswa[i].ID, constants.EmotionHappy, now)
	}

	stats, err := RunMissingCheckinReminder(db)
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if stats.MissingCount != 0 {
		t.Errorf("missing = %d, want 0", stats.MissingCount)
	}

	var count int64
	db.Model(&notifModel.NotificationModel{}).Count(&count)
	if count != 0 {
		t.Errorf("semua sudah check-in, tidak boleh ada notifikasi (ada %d)", count)
	}
}

func TestRunMissingCheckinReminderMostMissing(t *testing.T) {
	db := setupTestDB(t)
	seedTeachers(t, db, 1)
	kelas := seedClass(t, db, "7A")
	siswa := seedStudents(t, db, kelas.ID, 4)

	// hanya 1 dari 4 yang check-in → 75% bolong → urgent
	seedCheckinAt(t, db, siswa[0].ID, constants.EmotionHappy, time.Now())

	stats, err := RunMissingCheckinReminder(db)
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if stats.MissingCount != 3 {
		t.Errorf("missing = %d, want 3", stats.MissingCount)
	}
	if stats.MissingRate != 75 {
		t.Errorf("missing_rate = %d, want 75", stats.MissingRate)
	}
	if stats.Priority != constants.PriorityUrgent {
		t.Errorf("priority = %q, want urgent", stats.Priority)
	}

	var n notifModel.NotificationModel
	if err := db.First(&n).Error; err != nil {
		t.Fatalf("notifikasi tidak ada: %v", err)
	}
	if n.NotificationTitle != "⏰ Reminder: Siswa Belum Check-in" {
		t.Errorf("title = %q", n.NotificationTitle)
	}
	if n.NotificationType != constants.NotificationTypeAlert {
		t.Errorf("type = %q", n.NotificationType)
	}
	if !strings.Contains(n.NotificationMessage, "7A: 3 siswa") {
		t.Errorf("pesan tidak berisi ringkasan kelas: %q", n.NotificationMessage)
	}
	if !strings.Contains(string(n.NotificationMetadata), `"checked_in":1`) {
		t.Errorf("metadata tidak berisi jumlah yang sudah check-in: %s", n.NotificationMetadata)
	}
}

func TestRunMissingCheckinReminderClassTruncation(t *testing.T) {
	db := setupTestDB(t)
	seedTeachers(t, db, 1)

	// 5 kelas, masing-masing 1 siswa yang semuanya belum check-in
	for i := 0; i < 5; i++ {
		kelas := seedClass(t, db, fmt.Sprintf("Kelas %d", i))
		seedStudents(t, db, kelas.ID, 1)
	}

	stats, err := RunMissingCheckinReminder(db)
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if stats.MissingCount != 5 {
		t.Errorf("missing = %d, want 5", stats.MissingCount)
	}

	var n notifModel.NotificationModel
	if err := db.First(&n).Error; err != nil {
		t.Fatalf("notifikasi tidak ada: %v", err)
	}
	// hanya 3 kelas pertama disebut, sisanya diringkas
	if !strings.Contains(n.NotificationMessage, "dan 2 kelas lainnya") {
		t.Errorf("pesan tidak meringkas kelas tambahan: %q", n.NotificationMessage)
	}
}
