package engine

import (
	"fmt"
	"strings"

	"github.com/TahaPatil2004/TalentScout---AI-Hiring-Assistant/internal/ai"
	"github.com/TahaPatil2004/TalentScout---AI-Hiring-Assistant/internal/session"
)

const msgGreeting = "Hello! 👋 Welcome to TalentScout's AI-powered hiring assistant. " +
	"I'm here to streamline your interview process by gathering essential information. " +
	"This will take about 10-15 minutes. Let's get started! Could you please tell me your full name?"

const (
	msgAskName       = "I'd like to make sure I have your name correctly. Could you please provide your full name?"
	msgAskEmail      = "Nice to meet you, %s! 😊 Please provide your email address."
	msgAskPhone      = "Great! Now, what is your contact phone number?"
	msgAskExperience = "Perfect! How many years of professional experience do you have?"
	msgAskPosition   = "Excellent! What position(s) are you interested in?"
	msgAskLocation   = "Great choice! What's your current location? (City, Country)"
	msgAskTechStack  = "Perfect! Now for the technical part. 🔧 Please list your tech stack: " +
		"programming languages, frameworks, databases, and any other relevant tools."
)

const (
	msgEmailRetry      = "Please provide a valid email address (e.g., name@example.com)."
	msgPhoneRetry      = "Please provide a valid phone number (digits, 7-15 of them)."
	msgExperienceRetry = "Please provide your years of experience as a number (e.g., 2, 3.5)."
	msgPositionRetry   = "Please tell me what position(s) you're interested in. An answer like 'nothing' is not a valid role."
	msgLocationRetry   = "Please provide a valid location (e.g., 'Pune, India' or 'San Francisco, CA')."
	msgTechStackRetry  = "Please describe your technical skills and expertise."
	msgAnswerRetry     = "Please give the question a real answer — even a short one helps."
)

const msgRedirect = "Let's stay focused. 🙂 "

const msgEscalation = "⚠️ We seem to be stuck here. If anything is unclear, just answer as best you can — " +
	"or type 'exit' to stop the interview. "

const msgQuestionsIntro = "Excellent! I've prepared %d questions based on your tech stack. Let's begin:\n\n" +
	"❓ Question 1/%d:\n%s"

const msgNextQuestion = "Thank you. ❓ Question %d/%d:\n%s"

const msgSummaryAck = "\nIf everything looks right, send any message to finish the interview."

const msgSessionOver = "This interview is already finished. Thank you again! 🎉"

// reprompt maps every interactive stage to the restatement of its request,
// used by the global fallback redirect.
var reprompt = map[session.Stage]string{
	session.StageGreeting:          msgAskName,
	session.StageCollectName:       msgAskName,
	session.StageCollectEmail:      msgEmailRetry,
	session.StageCollectPhone:      msgPhoneRetry,
	session.StageCollectExperience: msgExperienceRetry,
	session.StageCollectPosition:   msgPositionRetry,
	session.StageCollectLocation:   msgLocationRetry,
	session.StageCollectTechStack:  msgTechStackRetry,
	session.StageQuestionLoop:      msgAnswerRetry,
}

// endingMessage thanks the candidate by name when the name was collected.
func endingMessage(s *session.Session) string {
	name := "there"
	if v, ok := s.Field(session.FieldFullName); ok {
		name = fmt.Sprintf("%v", v)
	}
	return fmt.Sprintf("Thank you, %s! 🎉 I've collected all the available information. "+
		"Our recruitment team will review your profile and contact you within 2-3 business days "+
		"if there's a good match. Best of luck with your job search! 🚀", name)
}

// renderSummary composes the read-only closing view of the profile and
// the technical answers.
func renderSummary(s *session.Session) string {
	var b strings.Builder
	b.WriteString("📋 Here's a summary of what we covered:\n\n")

	fields := []struct {
		icon  string
		label string
		key   string
	}{
		{"👤", "Full name", session.FieldFullName},
		{"📧", "Email", session.FieldEmail},
		{"📱", "Phone", session.FieldPhone},
		{"💼", "Experience", session.FieldExperience},
		{"🎯", "Desired position", session.FieldPosition},
		{"📍", "Location", session.FieldLocation},
		{"🔧", "Tech stack", session.FieldTechStack},
	}

	for _, f := range fields {
		value := "—"
		if v, ok := s.Field(f.key); ok {
			value = fmt.Sprintf("%v", v)
			if f.key == session.FieldExperience {
				value += " years"
			}
		}
		b.WriteString(fmt.Sprintf("%s %s: %s\n", f.icon, f.label, value))
	}

	answers := s.AnswersSnapshot()
	if len(answers) > 0 {
		b.WriteString(fmt.Sprintf("\n💬 Technical answers (%d):\n", len(answers)))
		for i, a := range answers {
			b.WriteString(fmt.Sprintf("%d. %s [%s]\n", i+1, a.Question, a.Sentiment))
		}

		dist := s.SentimentDistribution()
		b.WriteString(fmt.Sprintf("\n🙂 Overall tone: %d positive, %d neutral, %d negative\n",
			dist[ai.SentimentPositive], dist[ai.SentimentNeutral], dist[ai.SentimentNegative]))
	}

	b.WriteString(msgSummaryAck)
	return b.String()
}
