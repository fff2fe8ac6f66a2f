package ai

import (
	"fmt"
	"strings"
)

const questionsSystemPrompt = "You are an expert technical interviewer. " +
	"Generate %d relevant, practical interview questions based on the candidate's tech stack " +
	"and years of experience. Return only the questions, numbered 1-%d, one per line."

const extractNameSystemPrompt = "Extract the full name (first and last name) from the user's response. " +
	"Return only the cleaned full name, or 'NONE' if no valid full name can be identified."

const sentimentSystemPrompt = "Analyze the sentiment of this response. " +
	"Return one word: POSITIVE, NEUTRAL, or NEGATIVE."

// buildQuestionsPrompt composes the question-generation exchange.
func buildQuestionsPrompt(techStack string, years float64, count int) []Message {
	var user strings.Builder
	user.WriteString(fmt.Sprintf("Tech Stack: %s\n", techStack))
	user.WriteString(fmt.Sprintf("Experience: %g years", years))

	return []Message{
		{Role: RoleSystem, Content: fmt.Sprintf(questionsSystemPrompt, count, count)},
		{Role: RoleUser, Content: user.String()},
	}
}

// buildExtractNamePrompt composes the name-extraction exchange.
func buildExtractNamePrompt(freeText string) []Message {
	return []Message{
		{Role: RoleSystem, Content: extractNameSystemPrompt},
		{Role: RoleUser, Content: fmt.Sprintf("Extract the full name from: %s", freeText)},
	}
}

// buildSentimentPrompt composes the sentiment-classification exchange.
func buildSentimentPrompt(answer string) []Message {
	return []Message{
		{Role: RoleSystem, Content: sentimentSystemPrompt},
		{Role: RoleUser, Content: fmt.Sprintf("Response: %q", answer)},
	}
}
