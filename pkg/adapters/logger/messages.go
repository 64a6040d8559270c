package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Application lifecycle (info)
		"Starting hairline %s":               "hairline %s を起動します",
		"Pipeline built: %s":                 "パイプラインを構築しました: %s",
		"Debug frames will be written to %s": "デバッグフレームを %s に書き込みます",
		"Window closed, stopping pipeline":   "ウィンドウが閉じられました。パイプラインを停止します",
		"Interrupted, shutting down...":      "中断されました。シャットダウン中...",
		"Shutting down":                      "シャットダウンします",

		// Pipeline host (debug)
		"Pipeline %s playing, session %s":     "パイプライン %s を再生中 (セッション %s)",
		"Pipeline %s stopped, session %s":     "パイプライン %s を停止しました (セッション %s)",
		"Opened %s at %dx%d (%s)":             "%s を %dx%d (%s) で開きました",
		"Encoder started for %dx%d frames":    "%dx%d フレーム用のエンコーダを開始しました",
		"Decoder started for %dx%d frames":    "%dx%d フレーム用のデコーダを開始しました",
		"Accelerated display unavailable: %s": "アクセラレーション表示は利用できません: %s",

		// Button handlers (debug)
		"Orientation changed: %s -> %s":  "向きを変更しました: %s -> %s",
		"Color preset changed: %s -> %s": "カラープリセットを変更しました: %s -> %s",

		// Bus handlers
		"End-Of-Stream reached.":             "ストリームの終端に達しました。",
		"Error received from element %s: %s": "エレメント %s からエラーを受信しました: %s",
		"Debugging information: %s":          "デバッグ情報: %s",
		"Restarting pipeline":                "パイプラインを再起動します",

		// Warnings
		"Could not create glsink, falling back to softsink.": "glsink を作成できませんでした。softsink にフォールバックします。",
		"Failed to stop element: %s":                         "エレメントの停止に失敗しました: %s",
		"Failed to save debug frame %d: %s":                  "デバッグフレーム %d の保存に失敗しました: %s",

		// Errors
		"Failed to restart pipeline: %s": "パイプラインの再起動に失敗しました: %s",
		"Failed to read property %s: %s": "プロパティ %s の読み取りに失敗しました: %s",
		"Failed to set property %s: %s":  "プロパティ %s の設定に失敗しました: %s",
		"Failed to stop pipeline: %s":    "パイプラインの停止に失敗しました: %s",
		"Window error: %s":               "ウィンドウのエラー: %s",
	})
}
