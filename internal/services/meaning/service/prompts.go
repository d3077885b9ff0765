package service

import "strings"

// meaningPrompt asks for a stored definition of keyword
func meaningPrompt(keyword string) string {
	return `You are the meaning generator for MeanIn.

Define the keyword in simple, human language.
- Provide a short definition and a deeper explanation.
- Keep it friendly, not academic.
- Include one example sentence if possible.

Keyword: "` + keyword + `"

Return JSON:
{
  "short_definition": "1-2 sentences",
  "full_explanation": "3-6 sentences",
  "examples": ["one short example sentence"]
}`
}

// decodePrompt asks what keyword means inside this post, given any partial definition
func decodePrompt(text, keyword, definition, explanation string) string {
	var b strings.Builder
	b.WriteString(`You are the decode engine for MeanIn. Summarize the meaning of a phrase in the context of a specific post.

Return JSON:
{
  "base_meaning": "1-2 line universal definition of the keyword",
  "contextual_meaning": "1-2 lines explaining what the author likely meant in THIS post",
  "local_context": "1 line of regional or cultural context if relevant, else null",
  "local_example": "1 short example in local slang or language if relevant, else null",
  "origin": "2-3 sentences on the history and usage of this phrase, like a dictionary entry, including etymology and 1-2 notable recent mentions. null if unknown",
  "related_terms": ["array", "of", "related", "keywords"]
}
`)
	b.WriteString("\nPost text: \"" + text + "\"")
	b.WriteString("\nKeyword: \"" + keyword + "\"")
	b.WriteString("\nDefinition: \"" + definition + "\"")
	b.WriteString("\nExplanation: \"" + explanation + "\"")
	return b.String()
}
