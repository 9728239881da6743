package prompts

// OutlinePromptBuilder は、アウトライン生成プロンプトを構築する契約です。
type OutlinePromptBuilder interface {
	// Build は、指定されたモードとデータに基づいてプロンプト文字列を生成します。
	Build(mode string, data TemplateData) (string, error)
}
