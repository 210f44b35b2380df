package service

import (
	"testing"

	"github.com/tctinsama/KtigerStudy/internal/config"

	"github.com/stretchr/testify/assert"
)

func newMockGemini() *GeminiService {
	return NewGeminiService(config.GeminiConfig{Mock: true})
}

func TestMockResponseRestaurant(t *testing.T) {
	svc := newMockGemini()

	reply := svc.GenerateKoreanResponse("가격이 얼마예요?", "restaurant", "beginner")
	assert.Contains(t, reply, "8천원")

	reply = svc.GenerateKoreanResponse("주문할게요", "restaurant", "beginner")
	assert.Contains(t, reply, "드시고 싶으세요")
}

func TestMockResponseGreetingPerScenario(t *testing.T) {
	svc := newMockGemini()

	tests := []struct {
		scenario string
		want     string
	}{
		{"restaurant", "어서오세요"},
		{"shopping", "어서오세요"},
		{"introduction", "반가워요"},
		{"daily", "기분"},
	}
	for _, tt := range tests {
		reply := svc.GenerateKoreanResponse("안녕하세요", tt.scenario, "beginner")
		assert.Contains(t, reply, tt.want, "scenario %s", tt.scenario)
	}
}

func TestMockResponseUnknownScenario(t *testing.T) {
	svc := newMockGemini()

	reply := svc.GenerateKoreanResponse("아무 말", "unknown", "beginner")
	assert.Equal(t, "네, 그렇군요! 더 이야기해 보세요! 😊", reply)
}

func TestCleanResponse(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"AI: 안녕하세요!", "안녕하세요!"},
		{"안녕하세요 (annyeonghaseyo)!", "안녕하세요 !"},
		{"[설명] 반가워요.", "반가워요."},
		{"  공백 제거  ", "공백 제거"},
		{"(전부 괄호)", "네!"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, cleanResponse(tt.in))
	}
}

func TestBuildKoreanPromptContainsPersona(t *testing.T) {
	prompt := buildKoreanPrompt("메뉴 추천해 주세요", "restaurant", "beginner")

	assert.Contains(t, prompt, "민준")
	assert.Contains(t, prompt, "김치찌개")
	assert.Contains(t, prompt, "romanization")
	assert.Contains(t, prompt, `"메뉴 추천해 주세요"`)
}

func TestBuildKoreanPromptDifficulty(t *testing.T) {
	beginner := buildKoreanPrompt("안녕", "daily", "beginner")
	advanced := buildKoreanPrompt("안녕", "daily", "advanced")

	assert.Contains(t, beginner, "cơ bản")
	assert.Contains(t, advanced, "slang")
	assert.NotEqual(t, beginner, advanced)
}

func TestExtractResponseTextEmptyCandidates(t *testing.T) {
	text := extractResponseText(&geminiResponse{})
	assert.Equal(t, "죄송해요, 다시 말해 주세요.", text)
}
