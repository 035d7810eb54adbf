package service

import (
	"strings"
	"testing"
)

func TestAdcToGasPPM(t *testing.T) {
	tests := []struct {
		name string
		adc  int
		want int
	}{
		{"nol ADC = baseline outdoor", 0, 400},
		{"full scale", 4095, 5000},
		{"setengah skala", 2048, 2701},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AdcToGasPPM(tt.adc); got != tt.want {
				t.Errorf("AdcToGasPPM(%d) = %d, want %d", tt.adc, got, tt.want)
			}
		})
	}
}

func TestAdcToLux(t *testing.T) {
	if got := AdcToLux(50); got != 0 {
		t.Errorf("ADC di bawah 100 harus 0 lux, got %d", got)
	}
	if got := AdcToLux(4095); got != 2000 {
		t.Errorf("full scale harus 2000 lux, got %d", got)
	}
}

func TestAdcToDecibels(t *testing.T) {
	if got := AdcToDecibels(10); got != 30 {
		t.Errorf("ADC di bawah 50 harus 30 dB, got %d", got)
	}
	if got := AdcToDecibels(2000); got != 90 {
		t.Errorf("ADC 2000 harus 90 dB, got %d", got)
	}
	if got := AdcToDecibels(4095); got != 90 {
		t.Errorf("di atas cap tetap 90 dB, got %d", got)
	}
}

func TestClassifyTemperature(t *testing.T) {
	tests := []struct {
		name      string
		temp      float64
		wantLevel string
	}{
		{"tepat 30 derajat masih aman", 30.0, LevelSafe},
		{"30.1 derajat sudah panas", 30.1, LevelWarning},
		{"35 derajat sangat panas", 35.0, LevelDanger},
		{"di bawah 20 dingin", 19.9, LevelWarning},
		{"suhu kelas normal", 26.0, LevelSafe},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyTemperature(tt.temp)
			if got.Level != tt.wantLevel {
				t.Errorf("ClassifyTemperature(%.1f).Level = %s, want %s", tt.temp, got.Level, tt.wantLevel)
			}
		})
	}
}

func TestClassifyHumidity(t *testing.T) {
	if got := ClassifyHumidity(85); got.Level != LevelDanger {
		t.Errorf("85%% harus danger, got %s", got.Level)
	}
	if got := ClassifyHumidity(50); got.Level != LevelSafe {
		t.Errorf("50%% harus safe, got %s", got.Level)
	}
	if got := ClassifyHumidity(25); got.Level != LevelWarning {
		t.Errorf("25%% (kering) harus warning, got %s", got.Level)
	}
}

func TestClassifySound(t *testing.T) {
	if got := ClassifySound(70); got.Level != LevelDanger {
		t.Errorf("70 dB harus danger, got %s", got.Level)
	}
	if got := ClassifySound(56); got.Level != LevelWarning {
		t.Errorf("56 dB harus warning, got %s", got.Level)
	}
	if got := ClassifySound(35); got.Level != LevelSafe || got.Status != "🤫 Tenang" {
		t.Errorf("35 dB harus tenang, got %+v", got)
	}
}

func TestAnalyzeEnvironment(t *testing.T) {
	t.Run("semua aman", func(t *testing.T) {
		alert := AnalyzeEnvironment(EnvironmentInput{
			Temperature: 26.0,
			Humidity:    55.0,
			GasAnalog:   300,
			LightAnalog: 1000,
			SoundAnalog: 700,
		})
		if alert.Level != LevelSafe {
			t.Fatalf("level = %s, want safe (issues: %v)", alert.Level, alert.Issues)
		}
		if alert.Icon != "✅" {
			t.Errorf("icon = %s, want ✅", alert.Icon)
		}
		if len(alert.Issues) != 1 || alert.Issues[0] != "Semua kondisi lingkungan dalam keadaan baik" {
			t.Errorf("issues = %v", alert.Issues)
		}
		if len(alert.Recommendations) != 1 || alert.Recommendations[0] != "Pertahankan kondisi ruangan yang nyaman ini" {
			t.Errorf("recommendations = %v", alert.Recommendations)
		}
	})

	t.Run("suhu ekstrem mengangkat ke danger", func(t *testing.T) {
		alert := AnalyzeEnvironment(EnvironmentInput{
			Temperature: 36.0,
			Humidity:    55.0,
			GasAnalog:   300,
			LightAnalog: 1000,
			SoundAnalog: 700,
		})
		if alert.Level != LevelDanger {
			t.Fatalf("level = %s, want danger", alert.Level)
		}
		if alert.Icon != "🚨" {
			t.Errorf("icon = %s, want 🚨", alert.Icon)
		}
		found := false
		for _, r := range alert.Recommendations {
			if strings.Contains(r, "SEGERA") {
				found = true
			}
		}
		if !found {
			t.Errorf("rekomendasi evakuasi panas tidak ada: %v", alert.Recommendations)
		}
	})

	t.Run("gas berbahaya mengangkat ke danger", func(t *testing.T) {
		// ADC 1200 → ~1748 ppm, di atas ambang 1500
		alert := AnalyzeEnvironment(EnvironmentInput{
			Temperature: 26.0,
			Humidity:    55.0,
			GasAnalog:   1200,
			LightAnalog: 1000,
			SoundAnalog: 700,
		})
		if alert.Level != LevelDanger {
			t.Fatalf("level = %s, want danger (issues: %v)", alert.Level, alert.Issues)
		}
	})

	t.Run("kebisingan tinggi mentok di warning", func(t *testing.T) {
		// ADC 1800 → 84 dB, status per-metrik danger tapi keseluruhan warning
		alert := AnalyzeEnvironment(EnvironmentInput{
			Temperature: 26.0,
			Humidity:    55.0,
			GasAnalog:   300,
			LightAnalog: 1000,
			SoundAnalog: 1800,
		})
		if alert.Level != LevelWarning {
			t.Fatalf("level = %s, want warning (issues: %v)", alert.Level, alert.Issues)
		}
		if alert.Icon != "⚠️" {
			t.Errorf("icon = %s, want ⚠️", alert.Icon)
		}
	})

	t.Run("ruangan gelap terdeteksi", func(t *testing.T) {
		alert := AnalyzeEnvironment(EnvironmentInput{
			Temperature: 26.0,
			Humidity:    55.0,
			GasAnalog:   300,
			LightAnalog: 40, // < 100 ADC → 0 lux
			SoundAnalog: 700,
		})
		if alert.Level != LevelWarning {
			t.Fatalf("level = %s, want warning", alert.Level)
		}
		found := false
		for _, issue := range alert.Issues {
			if strings.Contains(issue, "Gelap") {
				found = true
			}
		}
		if !found {
			t.Errorf("issue gelap tidak ada: %v", alert.Issues)
		}
	})
}
