// Package main provides localization for the webpread CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Root command
		"Inspect WebP files and extract still or animation frames.": "WebPファイルを検査し、静止画またはアニメーションフレームを抽出します。",

		// Info command
		"Inspect a WebP file and print its structure": "WebPファイルを検査して構造を表示",
		"File":          "ファイル",
		"Size":          "サイズ",
		"Image":         "画像",
		"channels":      "チャンネル",
		"Alpha":         "アルファ",
		"Animation":     "アニメーション",
		"frames":        "フレーム",
		"loops forever": "無限ループ",
		"loops":         "ループ回数",
		"Metadata":      "メタデータ",

		// Extract command
		"Extract frames as PNG files":    "フレームをPNGファイルとして抽出",
		"Extracting %d frame(s) to %s":   "%d フレームを %s に抽出中",
		"Output saved to %s (%d frames)": "出力を %s に保存しました (%d フレーム)",

		// Sheet command
		"Render all frames into a contact sheet PNG": "全フレームをコンタクトシートPNGに描画",
		"Rendering contact sheet (%d columns)":       "コンタクトシートを描画中 (%d カラム)",
		"Contact sheet saved to %s":                  "コンタクトシートを %s に保存しました",

		// Version command
		"Show version information": "バージョン情報を表示",
		"webpread version %s":      "webpread バージョン %s",

		// Signals
		"Interrupted, shutting down...": "中断されました。シャットダウン中...",
	})
}
