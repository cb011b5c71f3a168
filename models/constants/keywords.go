package constants

// GetRelevanceKeywords returns the lowercase terms an item must contain, in
// title or summary, to make it into the digest.
func GetRelevanceKeywords() []string {
	return []string{
		// organizations and models
		"openai",
		"anthropic",
		"claude",
		"gpt",
		"chatgpt",
		"gemini",
		"deepmind",
		"mistral",
		"llama",
		"nvidia",
		"hugging face",
		"stability ai",
		// business events
		"funding",
		"raised",
		"acquisition",
		"acquires",
		"ipo",
		"valuation",
		"launch",
		"release",
		"announce",
		// regulation and incidents
		"regulation",
		"ai act",
		"lawsuit",
		"copyright",
		"data breach",
		"vulnerability",
		"jailbreak",
		// russian-language sources
		"нейросет",
		"искусственный интеллект",
		"языковая модель",
		"запуск",
		"релиз",
		"инвестиции",
		"регулирован",
		"утечка",
	}
}
