// Package main provides localization for the hairline CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Flag categories
		"Capture":    "キャプチャ",
		"Processing": "映像処理",
		"Display":    "表示",
		"Debug":      "デバッグ",
		"Logging":    "ログ",

		// Root command
		"Live camera viewer with flip, rotate and invert controls": "反転・回転・色反転ボタン付きのライブカメラビューア",

		// General flags
		"YAML configuration file": "YAML設定ファイル",

		// Capture flags
		"Video source (camera, test, screen)":                      "映像ソース（camera, test, screen）",
		"Capture device, a path for camera or an index for screen": "キャプチャデバイス（カメラはパス、画面は番号）",
		"Capture width in pixels":                                  "キャプチャの幅（ピクセル）",
		"Capture height in pixels":                                 "キャプチャの高さ（ピクセル）",
		"Capture frame rate":                                       "キャプチャのフレームレート",
		"Frames per session before end-of-stream (0 = unlimited)":  "ストリーム終端までのセッションあたりフレーム数（0 = 無制限）",

		// Processing flags
		"Initial orientation (none, clockwise, rotate-180, ...)":           "初期の向き（none, clockwise, rotate-180, ...）",
		"Initial color preset (none, heat, sepia, xray, xpro, yellowblue)": "初期のカラープリセット（none, heat, sepia, xray, xpro, yellowblue）",
		"Codec round trip before display (none, jpeg, h264)":               "表示前に通すコーデック（none, jpeg, h264）",
		"Codec quality (0-100)":                     "コーデック品質（0-100）",
		"H.264 bitrate in kbps (0 = quality based)": "H.264 ビットレート（kbps、0 = 品質指定）",
		"Path to ffmpeg executable":                 "ffmpeg 実行ファイルのパス",

		// Display flags
		"Display mode (auto, accelerated, software)": "表示モード（auto, accelerated, software）",
		"Show the running time over the video":       "映像に経過時間を表示",
		"Run without a window":                       "ウィンドウなしで実行",

		// Debug flags
		"Enable debug output":        "デバッグ出力を有効化",
		"Directory for debug output": "デバッグ出力のディレクトリ",
		"Save every Nth frame":       "N フレームごとに保存",

		// Logging flags
		"Log level (debug, info, warn, error)": "ログレベル（debug, info, warn, error）",
		"Log format (text, json)":              "ログ形式（text, json）",
		"Suppress all log output":              "全てのログ出力を抑制",

		// Startup errors
		"Invalid configuration: %s":                           "設定が不正です: %s",
		"Failed to create debug directory: %s":                "デバッグディレクトリを作成できませんでした: %s",
		"Failed to build pipeline: %s":                        "パイプラインを構築できませんでした: %s",
		"Unable to set the pipeline to the playing state: %s": "パイプラインを再生状態にできませんでした: %s",
	})
}
