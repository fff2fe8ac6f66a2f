package validator

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// Validation errors returned to the engine. The engine never surfaces
// these to the candidate directly, it re-prompts instead.
var (
	ErrInvalidEmail      = errors.New("invalid email address")
	ErrInvalidPhone      = errors.New("invalid phone number")
	ErrInvalidExperience = errors.New("invalid years of experience")
	ErrInvalidName       = errors.New("invalid name")
)

const (
	minPhoneDigits = 7
	maxPhoneDigits = 15
	maxExperience  = 60
	maxTextLength  = 1000
)

var (
	emailPattern      = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	numberPattern     = regexp.MustCompile(`\d+(?:\.\d+)?`)
	negativePattern   = regexp.MustCompile(`(?:^|\s)-\d`)
	controlPattern    = regexp.MustCompile(`[\x00-\x08\x0B\x0C\x0E-\x1F\x7F]`)
	dangerousPattern  = regexp.MustCompile("[<>\"'`]")
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// wordNumbers maps spelled-out answers like "five years" to a numeric value.
var wordNumbers = map[string]float64{
	"zero": 0, "one": 1, "two": 2, "three": 3, "four": 4,
	"five": 5, "six": 6, "seven": 7, "eight": 8, "nine": 9,
	"ten": 10, "eleven": 11, "twelve": 12, "fifteen": 15, "twenty": 20,
}

// DefaultBlacklist lists non-answers rejected by IsMeaningful.
// The interview config may extend it.
var DefaultBlacklist = []string{
	"nothing", "none", "n/a", "na", "idk", "i don't know",
	"no", "no idea", "whatever", "asdf",
}

// ValidateEmail finds an email address in free text and returns it in
// normalized (lower-case, trimmed) form.
func ValidateEmail(text string) (string, error) {
	match := emailPattern.FindString(strings.TrimSpace(text))
	if match == "" {
		return "", ErrInvalidEmail
	}

	email := strings.ToLower(match)
	if len(email) > 254 || strings.Count(email, "@") != 1 {
		return "", ErrInvalidEmail
	}

	at := strings.Index(email, "@")
	local, domain := email[:at], email[at+1:]
	if local == "" || len(local) > 64 {
		return "", ErrInvalidEmail
	}
	if domain == "" || len(domain) > 253 || !strings.Contains(domain, ".") {
		return "", ErrInvalidEmail
	}

	return email, nil
}

// ValidatePhone accepts digits with optional separators and an optional
// country-code marker and returns the canonical digits-only form.
func ValidatePhone(text string) (string, error) {
	var digits strings.Builder
	for _, r := range text {
		switch {
		case r >= '0' && r <= '9':
			digits.WriteRune(r)
		case r == ' ' || r == '-' || r == '(' || r == ')' || r == '.' || r == '+':
			// separators and the country-code marker are dropped
		case unicode.IsLetter(r):
			// words around the number are fine ("my number is ...")
		}
	}

	phone := digits.String()
	if len(phone) < minPhoneDigits || len(phone) > maxPhoneDigits {
		return "", ErrInvalidPhone
	}

	return phone, nil
}

// ExtractExperience parses a non-negative years value from free text.
// Plain numbers, "5 years", spelled-out small numbers and the common
// "fresher"/"intern" phrasings are all accepted.
func ExtractExperience(text string) (float64, error) {
	lower := strings.ToLower(strings.TrimSpace(text))
	if lower == "" {
		return 0, ErrInvalidExperience
	}

	if negativePattern.MatchString(lower) {
		return 0, ErrInvalidExperience
	}

	if match := numberPattern.FindString(lower); match != "" {
		years, err := strconv.ParseFloat(match, 64)
		if err != nil || years > maxExperience {
			return 0, ErrInvalidExperience
		}
		return years, nil
	}

	for _, word := range strings.FieldsFunc(lower, func(r rune) bool { return !unicode.IsLetter(r) }) {
		if years, ok := wordNumbers[word]; ok {
			return years, nil
		}
	}

	// Candidates without formal experience answer in words, not numbers.
	for _, marker := range []string{"fresh", "graduate", "entry", "beginner"} {
		if strings.Contains(lower, marker) {
			return 0, nil
		}
	}
	if strings.Contains(lower, "intern") {
		return 0.5, nil
	}

	return 0, ErrInvalidExperience
}

// ValidateName checks the shape of a name taken from raw input: present,
// alphabetic-dominant, not punctuation or digits posing as a name.
func ValidateName(text string) (string, error) {
	name := whitespacePattern.ReplaceAllString(strings.TrimSpace(text), " ")
	if name == "" {
		return "", ErrInvalidName
	}

	var letters, other int
	for _, r := range name {
		switch {
		case unicode.IsLetter(r):
			letters++
		case unicode.IsSpace(r):
		default:
			other++
		}
	}

	if letters < 2 || letters <= other {
		return "", ErrInvalidName
	}

	return name, nil
}

// IsMeaningful reports whether free text carries enough content to be
// stored as an answer. Blacklisted filler like "idk" is rejected outright.
func IsMeaningful(text string, blacklist []string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}

	if IsBlacklisted(trimmed, blacklist) {
		return false
	}

	var alnum int
	for _, r := range trimmed {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			alnum++
		}
	}

	return alnum >= 2
}

// IsBlacklisted reports whether the whole text is one of the known
// filler non-answers.
func IsBlacklisted(text string, blacklist []string) bool {
	lower := strings.ToLower(strings.TrimSpace(text))
	if len(blacklist) == 0 {
		blacklist = DefaultBlacklist
	}
	for _, filler := range blacklist {
		if lower == filler {
			return true
		}
	}
	return false
}

// Sanitize strips markup-injection characters and control characters and
// collapses whitespace before text is stored or rendered. Idempotent:
// sanitizing sanitized text changes nothing.
func Sanitize(text string) string {
	if text == "" {
		return ""
	}

	clean := dangerousPattern.ReplaceAllString(text, "")
	clean = controlPattern.ReplaceAllString(clean, " ")
	clean = whitespacePattern.ReplaceAllString(strings.TrimSpace(clean), " ")

	runes := []rune(clean)
	if len(runes) > maxTextLength {
		clean = strings.TrimSpace(string(runes[:maxTextLength]))
	}

	return clean
}
