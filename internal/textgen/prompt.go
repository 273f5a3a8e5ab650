package textgen

import (
	"fmt"
	"strings"
)

var difficultyInstructions = map[string]string{
	"beginner":     `The sentence structure should be "Beginner". Use short, straightforward sentence structures. Avoid complex punctuation like semicolons or colons.`,
	"intermediate": `The sentence structure should be "Intermediate". Sentences should have varied length and structure, including some compound sentences.`,
	"advanced":     `The sentence structure should be "Advanced". Use complex sentence structures and varied punctuation. Include longer sentences with multiple clauses, commas, and possibly semicolons.`,
}

var complexityInstructions = map[string]string{
	"simple":  "For word complexity, use only simple, common vocabulary. The words should be easy to type and recognize.",
	"medium":  "For word complexity, use a mix of common and slightly more complex words, reflecting standard vocabulary.",
	"complex": "For word complexity, use sophisticated and varied vocabulary. Include less common and more challenging words to type.",
}

// Prompt builds the generation prompt for req. Unknown levels fall back to
// the intermediate and medium wording.
func Prompt(req Request) string {
	difficulty, ok := difficultyInstructions[strings.ToLower(req.Difficulty)]
	if !ok {
		difficulty = `The sentence structure should be "Intermediate". Sentences should have varied length and structure.`
	}
	complexity, ok := complexityInstructions[strings.ToLower(req.Complexity)]
	if !ok {
		complexity = "For word complexity, use a mix of common and slightly more complex words."
	}

	lines := []string{
		"Generate a paragraph for a typing speed test.",
		fmt.Sprintf("The paragraph must be about %q.", req.Topic),
		difficulty,
		complexity,
		fmt.Sprintf("It should contain approximately %d words.", req.Words),
		"The text must be a single, continuous paragraph.",
		"Do not use any special characters, formatting like markdown, or quotation marks.",
		"Ensure the text flows naturally and is suitable for typing practice.",
	}
	return strings.Join(lines, "\n")
}

// ImagePrompt builds the prompt for a decorative topic image.
func ImagePrompt(topic string) string {
	return fmt.Sprintf("Generate a high-quality, aesthetically pleasing, thematic image for the topic: %q. "+
		"The image should be suitable as a background. Cinematic, professional photography style.", topic)
}
