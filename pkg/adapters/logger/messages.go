package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Orchestration level messages (info)
		"Starting benchmark batch":      "ベンチマークバッチを開始します",
		"Interrupted, shutting down...": "中断されました。シャットダウン中...",
		"Batch completed: %d ok, %d failed, %d skipped": "バッチ完了: 成功 %d, 失敗 %d, スキップ %d",

		// Generate stage
		"Generating %s with %s":      "%s を %s で生成中",
		"Calling inference endpoint": "推論エンドポイントを呼び出し中",
		"Artifact saved to %s":       "アーティファクトを %s に保存しました",

		// Capture stage
		"Serving outputs at %s":          "出力を %s で配信中",
		"Capturing %s at %dx%d":          "%s を %dx%d でキャプチャ中",
		"Screenshot saved to %s":         "スクリーンショットを %s に保存しました",
		"Skipping %s: %s":                "%s をスキップ: %s",
		"Recording placeholder for %s":   "%s のプレースホルダーを記録中",
		"File server stopped":            "ファイルサーバーを停止しました",

		// Gallery stage
		"Gallery entry added for %s": "%s のギャラリーエントリを追加しました",
		"Gallery entry for %s already present, skipping": "%s のギャラリーエントリは既に存在します。スキップします",

		// Errors
		"Failed %s/%s: %s": "%s/%s が失敗しました: %s",
	})
}
