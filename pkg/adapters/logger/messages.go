package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Input plugin (webp component)
		"Container parsed: %dx%d, %d frame(s)":   "コンテナを解析: %dx%d, %d フレーム",
		"Decoding frame %d/%d":                   "フレームをデコード中 %d/%d",
		"Alpha association applied (gamma %.1f)": "アルファ合成を適用しました (ガンマ %.1f)",
		"Input closed":                           "入力を閉じました",

		// Extraction (extract component)
		"Extracted frame %d/%d":         "フレームを抽出しました %d/%d",
		"Extraction completed in %d ms": "抽出が %d ms で完了しました",
		"Metadata written":              "メタデータを書き出しました",
	})
}
