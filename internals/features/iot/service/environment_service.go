package service

import (
	"fmt"
	"math"
)

// Level lingkungan, diurutkan dari aman ke bahaya.
const (
	LevelSafe    = "safe"
	LevelWarning = "warning"
	LevelDanger  = "danger"
)

// Ambang batas dalam SATUAN FISIK (setelah konversi ADC),
// dikalibrasi untuk ruang kelas.
const (
	tempCold    = 20.0 // °C
	tempHot     = 30.0 // °C
	tempExtreme = 35.0 // °C

	humidityDry     = 30.0 // %
	humidityHumid   = 70.0 // %
	humidityExtreme = 85.0 // %

	gasWarning = 1200 // ppm, mulai pengap
	gasDanger  = 1500 // ppm, kualitas udara buruk

	lightDark   = 200  // lux
	lightDim    = 400  // lux
	lightBright = 1200 // lux

	soundQuiet  = 40 // dB
	soundNormal = 55 // dB
	soundNoisy  = 70 // dB
)

// AdcToGasPPM mengonversi ADC sensor MQ-135 (0-4095) ke perkiraan ppm CO2.
// Pendekatan linear sederhana; kalibrasi per-sensor di luar cakupan.
func AdcToGasPPM(adc int) int {
	const minPPM, maxPPM = 400.0, 5000.0
	ppm := minPPM + (float64(adc)/4095)*(maxPPM-minPPM)
	return int(math.Round(ppm))
}

// AdcToLux mengonversi ADC LDR ke perkiraan lux indoor (0-2000).
func AdcToLux(adc int) int {
	if adc < 100 {
		return 0
	}
	lux := math.Sqrt(float64(adc)/4095) * 2000
	return int(math.Round(lux))
}

// AdcToDecibels mengonversi ADC mikrofon ke perkiraan dB (30-90, cap di ADC 2000).
func AdcToDecibels(adc int) int {
	const minDB, maxDB = 30.0, 90.0
	if adc < 50 {
		return int(minDB)
	}
	normalized := math.Min(float64(adc)/2000, 1)
	return int(math.Round(minDB + normalized*(maxDB-minDB)))
}

type MetricClass struct {
	Status string `json:"status"`
	Level  string `json:"level"`
}

func ClassifyTemperature(temp float64) MetricClass {
	if temp < tempCold {
		return MetricClass{Status: "❄️ Dingin", Level: LevelWarning}
	}
	if temp >= tempExtreme {
		return MetricClass{Status: "🔥 Sangat Panas", Level: LevelDanger}
	}
	if temp > tempHot {
		return MetricClass{Status: "🌡️ Panas", Level: LevelWarning}
	}
	return MetricClass{Status: "✅ Normal", Level: LevelSafe}
}

func ClassifyHumidity(humidity float64) MetricClass {
	if humidity >= humidityExtreme {
		return MetricClass{Status: "💧 Sangat Lembap", Level: LevelDanger}
	}
	if humidity > humidityHumid {
		return MetricClass{Status: "💦 Lembap", Level: LevelWarning}
	}
	if humidity < humidityDry {
		return MetricClass{Status: "🏜️ Kering", Level: LevelWarning}
	}
	return MetricClass{Status: "✅ Normal", Level: LevelSafe}
}

func ClassifyGas(ppm int) MetricClass {
	if ppm >= gasDanger {
		return MetricClass{Status: "⚠️ Berbahaya", Level: LevelDanger}
	}
	if ppm >= gasWarning {
		return MetricClass{Status: "⚡ Waspada", Level: LevelWarning}
	}
	return MetricClass{Status: "✅ Aman", Level: LevelSafe}
}

func ClassifyLight(lux int) MetricClass {
	if lux < lightDark {
		return MetricClass{Status: "🌙 Gelap", Level: LevelWarning}
	}
	if lux < lightDim {
		return MetricClass{Status: "💡 Redup", Level: LevelWarning}
	}
	if lux > lightBright {
		return MetricClass{Status: "☀️ Sangat Terang", Level: LevelWarning}
	}
	return MetricClass{Status: "✅ Normal", Level: LevelSafe}
}

func ClassifySound(db int) MetricClass {
	if db >= soundNoisy {
		return MetricClass{Status: "🔊 Berisik", Level: LevelDanger}
	}
	if db > soundNormal {
		return MetricClass{Status: "📢 Agak Berisik", Level: LevelWarning}
	}
	if db < soundQuiet {
		return MetricClass{Status: "🤫 Tenang", Level: LevelSafe}
	}
	return MetricClass{Status: "✅ Normal", Level: LevelSafe}
}

type EnvironmentInput struct {
	Temperature float64
	Humidity    float64
	GasAnalog   int
	LightAnalog int
	SoundAnalog int
}

type EnvironmentAlert struct {
	Level           string   `json:"level"`
	Icon            string   `json:"icon"`
	Issues          []string `json:"issues"`
	Recommendations []string `json:"recommendations"`
	GasPPM          int      `json:"gas_ppm"`
	LightLux        int      `json:"light_lux"`
	SoundDB         int      `json:"sound_db"`
}

// AnalyzeEnvironment mengonversi nilai ADC ke satuan fisik lalu
// menggabungkan klasifikasi per metrik ke satu status keseluruhan.
// Hanya suhu ekstrem dan gas berbahaya yang mengangkat status ke danger;
// kelembaban ekstrem dan kebisingan tinggi mentok di warning.
func AnalyzeEnvironment(data EnvironmentInput) EnvironmentAlert {
	var issues, recommendations []string
	level := LevelSafe

	gasPPM := AdcToGasPPM(data.GasAnalog)
	lightLux := AdcToLux(data.LightAnalog)
	soundDB := AdcToDecibels(data.SoundAnalog)

	if tc := ClassifyTemperature(data.Temperature); tc.Level != LevelSafe {
		issues = append(issues, fmt.Sprintf("Suhu: %.1f°C (%s)", data.Temperature, tc.Status))
		switch {
		case data.Temperature >= tempExtreme:
			recommendations = append(recommendations, "🚨 SEGERA nyalakan AC atau pindah ke ruangan lebih sejuk")
			level = LevelDanger
		case data.Temperature > tempHot:
			recommendations = append(recommendations, "Nyalakan AC atau buka jendela untuk sirkulasi udara")
			if level == LevelSafe {
				level = LevelWarning
			}
		case data.Temperature < tempCold:
			recommendations = append(recommendations, "Tutup jendela atau nyalakan pemanas ruangan")
			if level == LevelSafe {
				level = LevelWarning
			}
		}
	}

	if hc := ClassifyHumidity(data.Humidity); hc.Level != LevelSafe {
		issues = append(issues, fmt.Sprintf("Kelembaban: %.1f%% (%s)", data.Humidity, hc.Status))
		switch {
		case data.Humidity >= humidityExtreme:
			recommendations = append(recommendations, "Gunakan dehumidifier atau tingkatkan ventilasi")
			if level != LevelDanger {
				level = LevelWarning
			}
		case data.Humidity > humidityHumid:
			recommendations = append(recommendations, "Buka jendela untuk mengurangi kelembaban")
			if level == LevelSafe {
				level = LevelWarning
			}
		case data.Humidity < humidityDry:
			recommendations = append(recommendations, "Gunakan humidifier atau letakkan wadah air di ruangan")
			if level == LevelSafe {
				level = LevelWarning
			}
		}
	}

	if gc := ClassifyGas(gasPPM); gc.Level != LevelSafe {
		issues = append(issues, fmt.Sprintf("Kualitas Udara: %d ppm (%s)", gasPPM, gc.Status))
		switch {
		case gasPPM >= gasDanger:
			recommendations = append(recommendations, "🚨 BAHAYA! Evakuasi siswa dan buka semua jendela")
			level = LevelDanger
		case gasPPM >= gasWarning:
			recommendations = append(recommendations, "Buka jendela untuk sirkulasi udara segar")
			if level == LevelSafe {
				level = LevelWarning
			}
		}
	}

	if lc := ClassifyLight(lightLux); lc.Level != LevelSafe {
		issues = append(issues, fmt.Sprintf("Kecerahan: %d lux (%s)", lightLux, lc.Status))
		switch {
		case lightLux < lightDark:
			recommendations = append(recommendations, "Nyalakan lampu untuk pencahayaan yang lebih baik")
			if level == LevelSafe {
				level = LevelWarning
			}
		case lightLux > lightBright:
			recommendations = append(recommendations, "Tutup tirai atau kurangi intensitas cahaya")
			if level == LevelSafe {
				level = LevelWarning
			}
		}
	}

	if sc := ClassifySound(soundDB); sc.Level != LevelSafe {
		issues = append(issues, fmt.Sprintf("Kebisingan: %d dB (%s)", soundDB, sc.Status))
		switch {
		case soundDB >= soundNoisy:
			recommendations = append(recommendations, "Kelas terlalu berisik, coba aktivitas yang lebih tenang")
			if level != LevelDanger {
				level = LevelWarning
			}
		case soundDB > soundNormal:
			recommendations = append(recommendations, "Tingkat kebisingan agak tinggi, perhatikan konsentrasi siswa")
			if level == LevelSafe {
				level = LevelWarning
			}
		}
	}

	icon := "✅"
	switch level {
	case LevelDanger:
		icon = "🚨"
	case LevelWarning:
		icon = "⚠️"
	}

	if len(issues) == 0 {
		issues = append(issues, "Semua kondisi lingkungan dalam keadaan baik")
		recommendations = append(recommendations, "Pertahankan kondisi ruangan yang nyaman ini")
	}

	return EnvironmentAlert{
		Level:           level,
		Icon:            icon,
		Issues:          issues,
		Recommendations: recommendations,
		GasPPM:          gasPPM,
		LightLux:        lightLux,
		SoundDB:         soundDB,
	}
}
