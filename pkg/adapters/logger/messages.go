package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Orchestration level messages (info)
		"Starting pipeline":                "パイプラインを開始します",
		"Frames ready: %d at %dx%d":        "%d フレームの準備ができました (%dx%d)",
		"Encoded %d frames":                "%d フレームをエンコードしました",
		"GIF written: %d frames, %d bytes": "GIF を書き込みました: %d フレーム, %d バイト",
		"Output saved to %s":               "出力を %s に保存しました",
		"Pipeline completed successfully":  "パイプラインが正常に完了しました",
		"Interrupted, shutting down...":    "中断されました。シャットダウン中...",
		"Debug output in %s":               "デバッグ出力先: %s",
		"Summary saved to %s":              "サマリーを %s に保存しました",

		// Load and synth stages
		"Loading %d input files":        "%d 個の入力ファイルを読み込み中",
		"Loaded %s (%dx%d)":             "%s を読み込みました (%dx%d)",
		"Resizing frames to %dx%d":      "フレームを %dx%d にリサイズ中",
		"Rendering %d synthetic frames": "%d 枚の合成フレームを描画中",

		// Encode stage
		"Encoding %d frames":         "%d フレームをエンコード中",
		"Encoded frame %d: %d bytes": "フレーム %d をエンコードしました: %d バイト",
		"Encoding completed":         "エンコードが完了しました",

		// Mux stage (gifmux component)
		"Muxing %d frames, loop %d":                                                "%d フレームを多重化中 (ループ %d)",
		"Header written: %dx%d, loop %d, global palette %t":                        "ヘッダーを書き込みました: %dx%d, ループ %d, グローバルパレット %t",
		"Frame %d written: delay %d, flags 0x%02x, transparent index %d, %d bytes": "フレーム %d を書き込みました: 遅延 %d, フラグ 0x%02x, 透過インデックス %d, %d バイト",
		"Trailer written: %d frames, %d bytes":                                     "トレーラーを書き込みました: %d フレーム, %d バイト",

		// Warnings
		"Frame %d has different size %dx%d, resizing": "フレーム %d のサイズ %dx%d が異なるためリサイズします",
		"Failed to save debug output: %s":             "デバッグ出力の保存に失敗しました: %s",

		// Errors
		"Failed to load frames: %s":   "フレームの読み込みに失敗しました: %s",
		"Failed to encode frames: %s": "フレームのエンコードに失敗しました: %s",
		"Failed to mux GIF: %s":       "GIF の多重化に失敗しました: %s",
		"Failed to write summary: %s": "サマリーの書き込みに失敗しました: %s",
	})
}
