// Package main provides localization for the gifmux CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Flag categories
		"Output":   "出力",
		"Frames":   "フレーム",
		"Encoding": "エンコード",
		"Demo":     "デモ",
		"Debug":    "デバッグ",
		"Logging":  "ログ",

		// Commands
		"Assemble animated GIF files from images": "画像からアニメーションGIFを作成",
		"Build an animated GIF from image files":  "画像ファイルからアニメーションGIFを作成",
		"Render a demo spinner animation to GIF":  "デモ用スピナーアニメーションをGIFに描画",
		"List the block structure of a GIF file":  "GIFファイルのブロック構造を表示",

		// Flags
		"Output GIF file path":                                 "出力GIFファイルパス",
		"YAML configuration file":                              "YAML設定ファイル",
		"Output execution summary to file (Markdown format)":   "実行サマリーをファイルに出力（Markdown形式）",
		"Output width (default: first image)":                  "出力幅（デフォルト: 最初の画像）",
		"Output height (default: first image)":                 "出力高さ（デフォルト: 最初の画像）",
		"Output width":                                         "出力幅",
		"Output height":                                        "出力高さ",
		"Frames per second":                                    "1秒あたりのフレーム数",
		"Delay between frames in milliseconds (overrides fps)": "フレーム間隔（ミリ秒、fpsより優先）",
		"Duration to hold final frame in milliseconds":         "最終フレームを保持する時間（ミリ秒）",
		"Loop count (0 = forever)":                             "ループ回数（0 = 無限）",
		"Palette: gray, websafe or plan9":                      "パレット: gray, websafe, plan9",
		"Floyd-Steinberg dithering":                            "Floyd-Steinbergディザリング",
		"Keep transparency (alpha < 128)":                      "透過を保持（アルファ < 128）",
		"Number of demo frames":                                "デモのフレーム数",
		"Caption under the spinner":                            "スピナー下のキャプション",
		"Background color (hex or 'transparent')":              "背景色（16進数または 'transparent'）",
		"Print the layout as JSON":                             "構造をJSONで出力",
		"Enable debug output":                                  "デバッグ出力を有効化",
		"Directory for debug output":                           "デバッグ出力先ディレクトリ",
		"Log level (debug, info, warn, error)":                 "ログレベル（debug, info, warn, error）",
		"Suppress all log output":                              "すべてのログ出力を抑制",

		// Messages
		"At least one input image is required": "入力画像が少なくとも1つ必要です",
		"Exactly one GIF file is required":     "GIFファイルを1つ指定してください",
		"Total: %d frames, %d bytes":           "合計: %d フレーム, %d バイト",
		"no loop extension":                    "ループ拡張なし",
		"loops forever":                        "無限ループ",
		"loops %d times":                       "%d 回ループ",

		// Summary content
		"GIF Summary":        "GIFサマリー",
		"Generated":          "生成日時",
		"Settings":           "設定",
		"Item":               "項目",
		"Value":              "値",
		"File":               "ファイル",
		"Image Size":         "画像サイズ",
		"Frame Count":        "フレーム数",
		"Duration":           "再生時間",
		"File Size":          "ファイルサイズ",
		"Global Palette":     "グローバルパレット",
		"Transparent Frames": "透過フレーム数",
		"Source":             "入力元",
		"files":              "ファイル",
		"demo":               "デモ",
		"Input Frames":       "入力フレーム数",
		"Palette":            "パレット",
		"Dither":             "ディザリング",
		"Transparency":       "透過",
		"Loop":               "ループ",
		"Forever":            "無限",
		"Frame Delay":        "フレーム間隔",
		"Outro Duration":     "アウトロ時間",
		"Yes":                "はい",
		"No":                 "いいえ",
		"None":               "なし",
		"Generated by":       "生成:",
	})
}
