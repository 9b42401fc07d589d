package usecase

import (
	"regexp"
	"strings"

	chatdto "campus-notice-backend/internal/chat/dto"
)

// The answer service returns free text with loosely consistent section
// markers. Segmentation is best effort: when nothing matches, the whole text
// is the main answer.

var mainAnswerEndMarkers = []string{
	"관련 공지사항\n",
	"관련 공지 링크\n",
	"관련 공지 링크:\n",
	"관련 공지사항 링크:\n",
	"관련 공지사항 링크는 아래와 같습니다:\n",
	"### 관련 공지사항 링크",
	"Related Announcements:",
	"추가로 궁금한 점이 있으시면",
	"혹시 더 궁금한 점이 있으신가요?",
	"### 추가 질문",
	"\n1. [💬",
}

var linksSectionMarkers = []string{
	"관련 공지사항\n",
	"관련 공지 링크\n",
	"관련 공지 링크:\n",
	"관련 공지사항 링크:\n",
	"관련 공지사항 링크는 아래와 같습니다:\n",
	"### 관련 공지사항 링크",
	"Related Announcements:",
}

var questionsStartMarkers = []string{
	"\n1. [💬",
	"추가로 궁금한 점이 있으시면",
	"혹시 더 궁금한 점이 있으신가요?",
	"### 추가 질문",
	"궁금한 점이 있으신가요?",
}

var (
	emojiLinkPattern   = regexp.MustCompile(`🔗[^\n]+`)
	colonLinkPattern   = regexp.MustCompile(`[^\n]+:\s*https?://[^\s\n]+`)
	bracketLinkPattern = regexp.MustCompile(`[^\n]*\[[^\]]+\]\(https?://[^\s\n)]+\)`)
	questionPattern    = regexp.MustCompile(`\d+\.\s*\[💬[^\]]*\]`)
)

// parseAnswer carves the raw answer into main answer, related links and
// suggested questions.
func parseAnswer(answer string) *chatdto.ChatResponse {
	response := &chatdto.ChatResponse{
		MainAnswer:         strings.TrimSpace(answer),
		RelatedLinks:       []string{},
		SuggestedQuestions: []string{},
	}

	if end := firstMarkerIndex(answer, mainAnswerEndMarkers); end != -1 {
		response.MainAnswer = strings.TrimSpace(answer[:end])
	}

	questionsStart := firstMarkerIndex(answer, questionsStartMarkers)

	if linksStart := firstMarkerIndex(answer, linksSectionMarkers); linksStart != -1 {
		linksSection := answer[linksStart:]
		if questionsStart > linksStart {
			linksSection = answer[linksStart:questionsStart]
		}
		response.RelatedLinks = extractLinks(linksSection)
	}

	if questionsStart != -1 {
		response.SuggestedQuestions = extractQuestions(answer[questionsStart:])
	}

	return response
}

func firstMarkerIndex(text string, markers []string) int {
	for _, marker := range markers {
		if idx := strings.Index(text, marker); idx != -1 {
			return idx
		}
	}
	return -1
}

func extractLinks(section string) []string {
	var matches []string
	matches = append(matches, emojiLinkPattern.FindAllString(section, -1)...)
	matches = append(matches, colonLinkPattern.FindAllString(section, -1)...)
	matches = append(matches, bracketLinkPattern.FindAllString(section, -1)...)

	links := make([]string, 0, len(matches))
	for _, match := range matches {
		link := strings.TrimSpace(match)
		link = strings.TrimSuffix(link, ")")
		links = append(links, link)
	}
	return links
}

func extractQuestions(section string) []string {
	matches := questionPattern.FindAllString(section, -1)
	questions := make([]string, 0, len(matches))
	for _, match := range matches {
		questions = append(questions, strings.TrimSpace(match))
	}
	return questions
}
