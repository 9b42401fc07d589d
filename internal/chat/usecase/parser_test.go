package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAnswerFullSections(t *testing.T) {
	answer := "2026학년도 1학기 국가장학금 신청 기간은 3월 14일까지입니다.\n" +
		"관련 공지사항\n" +
		"🔗 국가장학금 신청 안내: https://example.ac.kr/notice/1041\n" +
		"🔗 교내장학금 신청 안내: https://example.ac.kr/notice/1038\n" +
		"\n1. [💬 국가장학금 신청 서류는 무엇인가요?]\n" +
		"2. [💬 교내장학금과 중복 신청이 가능한가요?]\n"

	parsed := parseAnswer(answer)

	assert.Equal(t, "2026학년도 1학기 국가장학금 신청 기간은 3월 14일까지입니다.", parsed.MainAnswer)
	require.NotEmpty(t, parsed.RelatedLinks)
	assert.Contains(t, parsed.RelatedLinks, "🔗 국가장학금 신청 안내: https://example.ac.kr/notice/1041")
	assert.Len(t, parsed.SuggestedQuestions, 2)
	assert.Contains(t, parsed.SuggestedQuestions[0], "국가장학금 신청 서류")
}

func TestParseAnswerMarkdownLinks(t *testing.T) {
	answer := "수강신청은 포털에서 진행됩니다.\n" +
		"### 관련 공지사항 링크\n" +
		"- [수강신청 일정](https://example.ac.kr/notice/2001)\n"

	parsed := parseAnswer(answer)

	assert.Equal(t, "수강신청은 포털에서 진행됩니다.", parsed.MainAnswer)
	require.Len(t, parsed.RelatedLinks, 1)
	assert.Equal(t, "- [수강신청 일정](https://example.ac.kr/notice/2001", parsed.RelatedLinks[0])
}

func TestParseAnswerNoMarkersFallsBack(t *testing.T) {
	// Free text with no recognizable sections: the whole answer is the
	// main answer.
	answer := "  도서관은 평일 9시부터 22시까지 운영합니다.  "

	parsed := parseAnswer(answer)

	assert.Equal(t, "도서관은 평일 9시부터 22시까지 운영합니다.", parsed.MainAnswer)
	assert.Empty(t, parsed.RelatedLinks)
	assert.Empty(t, parsed.SuggestedQuestions)
}

func TestParseAnswerQuestionsWithoutLinks(t *testing.T) {
	answer := "기숙사 신청은 매 학기 초에 진행됩니다.\n" +
		"\n1. [💬 기숙사 비용은 얼마인가요?]\n"

	parsed := parseAnswer(answer)

	assert.Equal(t, "기숙사 신청은 매 학기 초에 진행됩니다.", parsed.MainAnswer)
	assert.Empty(t, parsed.RelatedLinks)
	assert.Len(t, parsed.SuggestedQuestions, 1)
}
