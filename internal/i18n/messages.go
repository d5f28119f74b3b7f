package i18n

// Message keys.
const (
	KeyAppTitle            = "appTitle"
	KeyAIDesignerTitle     = "aiDesignerTitle"
	KeyPromptPlaceholder   = "promptPlaceholder"
	KeyGenerating          = "generating"
	KeyGenerateDesign      = "generateDesign"
	KeyUnknownError        = "unknownError"
	KeyManualControlsTitle = "manualControlsTitle"
	KeyResetToDefault      = "resetToDefault"
	KeyCourtColor          = "courtColor"
	KeyLinesColor          = "linesColor"
	KeyOutOfPlayColor      = "outOfPlayColor"
	KeyFrameColor          = "frameColor"
	KeyNetColor            = "netColor"
	KeyNetLogoColor        = "netLogoColor"
	KeyGlassOpacity        = "glassOpacity"
	KeyGlassOpacityPercent = "glassOpacityPercent"
	KeyDimensionLength     = "dimensionLength"
	KeyDimensionWidth      = "dimensionWidth"
	KeyDimensionWallHeight = "dimensionWallHeight"
	KeyGenerationFailed    = "generationFailed"
	KeyGenerationBusy      = "generationBusy"
	KeyGenerationStale     = "generationStale"
	KeyAIUnavailable       = "aiUnavailable"
	KeyAISystemInstruction = "aiSystemInstruction"
	KeyAIPrompt            = "aiPrompt"
)

var catalog = map[Locale]map[string]string{
	English: {
		KeyAppTitle:            "AI Padel Court Designer",
		KeyAIDesignerTitle:     "AI Designer",
		KeyPromptPlaceholder:   "e.g., A futuristic court with neon blue accents",
		KeyGenerating:          "Generating...",
		KeyGenerateDesign:      "Generate Design",
		KeyUnknownError:        "An unknown error occurred.",
		KeyManualControlsTitle: "Manual Controls",
		KeyResetToDefault:      "Reset to default",
		KeyCourtColor:          "Court Color",
		KeyLinesColor:          "Lines Color",
		KeyOutOfPlayColor:      "Out of Play Color",
		KeyFrameColor:          "Frame Color",
		KeyNetColor:            "Net Color",
		KeyNetLogoColor:        "Net Logo Color",
		KeyGlassOpacity:        "Glass Opacity",
		KeyGlassOpacityPercent: "Glass Opacity: {percent}%",
		KeyDimensionLength:     "Length: {length}m",
		KeyDimensionWidth:      "Width: {width}m",
		KeyDimensionWallHeight: "Wall Height: {height}m",
		KeyGenerationFailed:    "Failed to generate the AI design. Please check your prompt or API key.",
		KeyGenerationBusy:      "A design is already being generated.",
		KeyGenerationStale:     "A newer request replaced this design.",
		KeyAIUnavailable:       "The AI designer is not configured.",
		KeyAISystemInstruction: "You are a world-class padel court designer. Your task is to produce a creative, " +
			"aesthetic design based on the user's request. You MUST respond ONLY with a valid JSON object that " +
			"matches the provided schema. Make sure the colors have good contrast and the design is cohesive. " +
			"The glass opacity must be a low number for transparency.",
		KeyAIPrompt: "Design a padel court with the following theme: {prompt}",
	},
	Indonesian: {
		KeyAppTitle:            "Desainer Lapangan Padel AI",
		KeyAIDesignerTitle:     "Desainer AI",
		KeyPromptPlaceholder:   "cth., Lapangan futuristik dengan aksen neon biru",
		KeyGenerating:          "Membuat...",
		KeyGenerateDesign:      "Buat Desain",
		KeyUnknownError:        "Terjadi kesalahan yang tidak diketahui.",
		KeyManualControlsTitle: "Kontrol Manual",
		KeyResetToDefault:      "Setel ulang ke default",
		KeyCourtColor:          "Warna Lapangan",
		KeyLinesColor:          "Warna Garis",
		KeyOutOfPlayColor:      "Warna Area Luar",
		KeyFrameColor:          "Warna Rangka",
		KeyNetColor:            "Warna Jaring",
		KeyNetLogoColor:        "Warna Logo Jaring",
		KeyGlassOpacity:        "Opasitas Kaca",
		KeyGlassOpacityPercent: "Opasitas Kaca: {percent}%",
		KeyDimensionLength:     "Panjang: {length}m",
		KeyDimensionWidth:      "Lebar: {width}m",
		KeyDimensionWallHeight: "Tinggi Dinding: {height}m",
		KeyGenerationFailed:    "Gagal membuat desain AI. Harap periksa perintah atau kunci API Anda.",
		KeyGenerationBusy:      "Desain sedang dibuat.",
		KeyGenerationStale:     "Permintaan yang lebih baru menggantikan desain ini.",
		KeyAIUnavailable:       "Desainer AI belum dikonfigurasi.",
		KeyAISystemInstruction: "Anda adalah desainer lapangan Padel kelas dunia. Tugas Anda adalah menghasilkan desain " +
			"yang kreatif dan estetis berdasarkan permintaan pengguna. Anda HARUS merespons HANYA dengan objek JSON " +
			"yang valid yang sesuai dengan skema yang disediakan. Pastikan warna memiliki kontras yang baik dan " +
			"desainnya kohesif. Opasitas kaca harus berupa angka rendah untuk transparansi.",
		KeyAIPrompt: "Rancang lapangan padel dengan tema berikut: {prompt}",
	},
}
