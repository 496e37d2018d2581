// Package main provides localization for the uibench CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Root command
		"Benchmark multimodal models by regenerating application interfaces from screenshots.": "スクリーンショットからアプリケーションUIを再生成してマルチモーダルモデルをベンチマーク",

		// Subcommands
		"Run the full benchmark batch: generate, capture and gallery.": "ベンチマークバッチ全体を実行: 生成、キャプチャ、ギャラリー",
		"Generate one interface artifact.":                             "インターフェースアーティファクトを1件生成",
		"Capture screenshots for existing artifacts.":                  "既存アーティファクトのスクリーンショットをキャプチャ",
		"Rebuild the gallery from existing outputs.":                   "既存の出力からギャラリーを再構築",
		"Show version information.":                                    "バージョン情報を表示",

		// Arguments
		"Model identifiers (override configured models).": "モデル識別子（設定されたモデルを上書き）",
		"Application name (e.g. \"Microsoft Word\").":     "アプリケーション名（例: \"Microsoft Word\"）",
		"Provider-qualified model identifier.":            "プロバイダー修飾のモデル識別子",

		// Common flags
		"YAML configuration file path.":                 "YAML設定ファイルのパス",
		"Limit the batch to these application names.":   "バッチを指定したアプリケーション名に限定",
		"Outputs directory (default: outputs).":         "出力ディレクトリ（デフォルト: outputs）",
		"Gallery document path (default: index.html).":  "ギャラリードキュメントのパス（デフォルト: index.html）",
		"Log level (debug, info, warn, error).":         "ログレベル（debug, info, warn, error）",
		"Suppress all log output.":                      "全てのログ出力を抑制",

		// Generation flags
		"Output token ceiling for generation (default: 16000).": "生成時の出力トークン上限（デフォルト: 16000）",

		// Capture flags
		"Recapture even when the screenshot already exists.":                            "スクリーンショットが既に存在しても再キャプチャ",
		"Delay after page load before capture in milliseconds (default: 500).":          "ページ読み込み後、キャプチャまでの待機時間（ミリ秒、デフォルト: 500）",
		"Per-capture timeout in milliseconds (default: 30000).":                         "キャプチャ毎のタイムアウト（ミリ秒、デフォルト: 30000）",
		"Path to Chrome executable (falls back to CHROME_PATH env, then system default).": "Chrome実行ファイルのパス（CHROME_PATH環境変数、次にシステムデフォルトの順）",
		"Do not record placeholder images for failed renders.":                          "レンダリング失敗時のプレースホルダー画像を記録しない",

		// Gallery flags
		"Skip gallery assembly.": "ギャラリー組み立てをスキップ",

		// Batch flags
		"Number of parallel pipeline instances (default: 1).": "並列パイプラインインスタンス数（デフォルト: 1）",
		"Output execution summary to file (Markdown format).": "実行サマリーをファイルに出力（Markdown形式）",

		// Runtime messages
		"at least one model is required": "少なくとも1つのモデルが必要です",
		"%d of %d pairs failed":          "%d / %d ペアが失敗しました",
		"Summary saved to %s":            "サマリーを %s に保存しました",
		"Failed to write summary: %s":    "サマリーの書き込みに失敗しました: %s",
		"screenshot not captured yet":    "スクリーンショットが未キャプチャです",
		"Gallery updated: %d entries added": "ギャラリーを更新: %d 件のエントリを追加",
		"uibench version %s":                "uibench バージョン %s",
	})
}
