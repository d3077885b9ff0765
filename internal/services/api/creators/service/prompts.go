package service

import "fmt"

func analyzePrompt(cep []byte) string {
	return fmt.Sprintf(`You summarize a creator's profile for generating short coded statuses in their voice.
Return compact JSON only:
{"tone": string, "style": string, "themes": [string], "avoid": [string],
 "metaphor_density": 0-1, "cryptic_level": 0-1, "slang_level": 0-1,
 "references": {"music": [string], "films": [string], "hobbies": [string]}}

Profile input (JSON): %s`, cep)
}

func predictPrompt(analyzed []byte, seed string) string {
	return fmt.Sprintf(`You write short, coded status lines under 140 characters in the user's voice.
Use tone, style, themes and avoid from the profile. Keep it human and subtle, not generic.
Return JSON only: {"suggestions": [string]} with at most 6 lines.

Profile: %s
Seed (optional): %s`, analyzed, seed)
}
