package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/tctinsama/KtigerStudy/internal/config"
	"github.com/tctinsama/KtigerStudy/pkg/logger"

	"go.uber.org/zap"
)

// GeminiService 调用Google生成式AI接口生成韩语对话回复。
// Mock模式或外部调用失败时回退到内置模拟回复。
type GeminiService struct {
	cfg    config.GeminiConfig
	client *http.Client
	rand   *rand.Rand
}

func NewGeminiService(cfg config.GeminiConfig) *GeminiService {
	return &GeminiService{
		cfg:    cfg,
		client: &http.Client{Timeout: 30 * time.Second},
		rand:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig map[string]interface{} `json:"generationConfig,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// GenerateKoreanResponse 按场景与难度生成韩语回复
func (s *GeminiService) GenerateKoreanResponse(userMessage, scenario, difficulty string) string {
	if s.cfg.Mock {
		logger.Log.Info("使用模拟回复",
			zap.String("scenario", scenario),
			zap.String("difficulty", difficulty))
		return s.mockResponse(userMessage, scenario)
	}

	prompt := buildKoreanPrompt(userMessage, scenario, difficulty)

	result, err := s.generate(prompt, map[string]interface{}{
		"temperature":     0.8,
		"maxOutputTokens": 150,
		"topP":            0.9,
		"topK":            40,
	})
	if err != nil {
		logger.Log.Error("Gemini接口调用失败，回退到模拟回复", zap.Error(err))
		return s.mockResponse(userMessage, scenario)
	}
	return result
}

// TranslateToVietnamese 将韩语回复翻译为越南语，失败时返回占位文案
func (s *GeminiService) TranslateToVietnamese(koreanText string) string {
	if s.cfg.Mock {
		return "(Bản dịch thử nghiệm) " + koreanText
	}

	prompt := "Hãy dịch câu sau sang tiếng Việt tự nhiên, không thêm giải thích:\n" + koreanText

	result, err := s.generate(prompt, map[string]interface{}{
		"temperature":     0.2,
		"maxOutputTokens": 150,
	})
	if err != nil {
		logger.Log.Error("Gemini翻译失败", zap.Error(err))
		return "(Không dịch được)"
	}
	return result
}

func (s *GeminiService) generate(prompt string, generationConfig map[string]interface{}) (string, error) {
	reqBody := geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: prompt}}},
		},
		GenerationConfig: generationConfig,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s?key=%s", s.cfg.APIURL, s.cfg.APIKey)
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini api error (status %d): %s", resp.StatusCode, string(body))
	}

	var parsed geminiResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", err
	}
	if parsed.Error != nil {
		return "", fmt.Errorf("gemini api error: %s", parsed.Error.Message)
	}

	return extractResponseText(&parsed), nil
}

func extractResponseText(resp *geminiResponse) string {
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "죄송해요, 다시 말해 주세요."
	}
	return cleanResponse(resp.Candidates[0].Content.Parts[0].Text)
}

var (
	parenRe   = regexp.MustCompile(`\([^)]*\)`)
	bracketRe = regexp.MustCompile(`\[[^\]]*\]`)
)

// cleanResponse 去掉模型附带的解释与前缀，保留句末标点
func cleanResponse(response string) string {
	cleaned := parenRe.ReplaceAllString(response, "")
	cleaned = bracketRe.ReplaceAllString(cleaned, "")
	cleaned = strings.TrimPrefix(cleaned, "AI:")
	cleaned = strings.TrimPrefix(cleaned, "User:")
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return "네!"
	}
	return cleaned
}

// buildKoreanPrompt 组装角色、性格、难度、场景与示例的完整提示词
func buildKoreanPrompt(userMessage, scenario, difficulty string) string {
	var rolePrompt string
	switch scenario {
	case "restaurant":
		rolePrompt = "Bạn là Min-jun (민준), 25 tuổi, nhân viên nhà hàng Hàn Quốc vui vẻ và am hiểu về đồ ăn. " +
			"Bạn rất thích giới thiệu món ăn ngon và luôn hỏi thêm về sở thích của khách để tư vấn phù hợp. " +
			"Bạn biết rõ về vị, cách chế biến, giá cả và có thể so sánh các món ăn. "
	case "shopping":
		rolePrompt = "Bạn là So-young (소영), 23 tuổi, nhân viên bán hàng thời trang nhiệt tình. " +
			"Bạn hiểu rõ về sản phẩm, style, và luôn tư vấn tận tình để khách hàng hài lòng. " +
			"Bạn có thể mô tả chi tiết về chất liệu, màu sắc, cách phối đồ. "
	case "direction":
		rolePrompt = "Bạn là Hyun-woo (현우), 28 tuổi, sinh viên Seoul rất quen thuộc với địa điểm trong thành phố. " +
			"Bạn thích giúp đỡ du khách và luôn đưa ra hướng dẫn chi tiết, dễ hiểu. " +
			"Bạn biết về giao thông, thời gian di chuyển và các landmark nổi tiếng. "
	case "introduction":
		rolePrompt = "Bạn là Ji-hye (지혜), 24 tuổi, sinh viên đại học Seoul thân thiện và cởi mở. " +
			"Bạn thích làm quen với bạn bè quốc tế và luôn tò mò về văn hóa của người khác. " +
			"Bạn hay chia sẻ về cuộc sống, sở thích và hỏi thăm về đối phương. "
	case "daily":
		rolePrompt = "Bạn là Tae-min (태민), 26 tuổi, bạn thân của họ đã quen biết 2 năm. " +
			"Bạn hay nói chuyện về cuộc sống hàng ngày, công việc, thời tiết, phim ảnh, âm nhạc. " +
			"Bạn rất thoải mái và thân thiết, thường dùng ngôn ngữ thân mật. "
	default:
		rolePrompt = "Bạn là một người Hàn Quốc thân thiện 25 tuổi. "
	}

	var personalityPrompt string
	switch scenario {
	case "restaurant":
		personalityPrompt = "Tính cách: Nhiệt tình, am hiểu ẩm thực, thích mô tả chi tiết về món ăn. " +
			"Luôn hỏi thêm về khẩu vị (매운 맛, 담백한 맛, 달콤한 맛) để tư vấn phù hợp. " +
			"Thích kể về nguồn gốc món ăn và cách ăn ngon nhất. "
	case "shopping":
		personalityPrompt = "Tính cách: Thời trang, tỉ mỉ, thích tư vấn style. " +
			"Luôn hỏi về dịp mặc, sở thích màu sắc, và budget để gợi ý phù hợp. " +
			"Thích so sánh sản phẩm và giải thích lý do chọn. "
	case "direction":
		personalityPrompt = "Tính cách: Nhiệt tình giúp đỡ, rất quen địa bàn Seoul. " +
			"Luôn đưa ra ít nhất 2 cách đi và cho biết thời gian, chi phí. " +
			"Thích gợi ý thêm địa điểm hay gần đó. "
	case "introduction":
		personalityPrompt = "Tính cách: Tò mò, thân thiện, thích tìm hiểu về văn hóa khác. " +
			"Luôn hỏi đáp lại và chia sẻ về bản thân. " +
			"Thích hỏi về ấn tượng đầu tiên về Hàn Quốc. "
	case "daily":
		personalityPrompt = "Tính cách: Thoải mái, hay trêu đùa nhẹ nhàng, quan tâm bạn bè. " +
			"Thích chia sẻ về chuyện hàng ngày và hỏi ý kiến. " +
			"Hay dùng từ ngữ thân mật như 야, 진짜, 대박. "
	default:
		personalityPrompt = "Tính cách: Thân thiện và nhiệt tình. "
	}

	var difficultyPrompt string
	switch difficulty {
	case "beginner":
		difficultyPrompt = "Ngôn ngữ: Dùng từ vựng cơ bản, câu ngắn 1-2 câu. " +
			"Thi thoảng thêm romanization cho từ khó: 안녕하세요 (annyeonghaseyo). " +
			"Nói chậm rãi, rõ ràng, dễ hiểu. "
	case "intermediate":
		difficultyPrompt = "Ngôn ngữ: Dùng từ vựng thông dụng, câu trung bình 2-3 câu. " +
			"Đôi khi dùng ngữ pháp vừa phải, giải thích nghĩa nếu cần. " +
			"Tự nhiên nhưng không quá khó. "
	case "advanced":
		difficultyPrompt = "Ngôn ngữ: Tiếng Hàn tự nhiên như người bản địa. " +
			"Có thể dùng slang trẻ, thành ngữ, cách nói địa phương Seoul. " +
			"Nói nhanh và tự nhiên như bạn bè thật. "
	default:
		difficultyPrompt = "Ngôn ngữ: Vừa phải, tự nhiên. "
	}

	var contextPrompt string
	switch scenario {
	case "restaurant":
		contextPrompt = "Bối cảnh: Nhà hàng Hàn Quốc truyền thống ở Myeongdong, Seoul. " +
			"Menu có: 김치찌개 (8,000원), 불고기 (15,000원), 비빔밥 (9,000원), " +
			"삼겹살 (12,000원), 제육볶음 (10,000원), 냉면 (8,000원), 순두부찌개 (7,000원). " +
			"Đang là giờ ăn trưa, nhà hàng khá đông. "
	case "shopping":
		contextPrompt = "Bối cảnh: Cửa hàng thời trang ở Hongdae, Seoul. " +
			"Có quần áo casual, formal, phụ kiện. Đang có sale 20-30%. " +
			"Size từ XS đến XL, nhiều màu sắc trendy. "
	case "direction":
		contextPrompt = "Bối cảnh: Ga tàu điện Gangnam, Seoul vào buổi chiều. " +
			"Có subway, bus, taxi. Traffic hơi đông. " +
			"Nhiều landmark nổi tiếng gần đó. "
	case "introduction":
		contextPrompt = "Bối cảnh: Café ở Hongdae vào cuối tuần. " +
			"Không khí thoải mái, nhiều bạn trẻ. " +
			"Đang uống coffee và trò chuyện làm quen. "
	case "daily":
		contextPrompt = "Bối cảnh: Cuối tuần ở Seoul, thời tiết đẹp. " +
			"Đang nhắn tin qua KakaoTalk hoặc gặp mặt tại café. " +
			"Tâm trạng thoải mái, muốn chia sẻ và tám chuyện. "
	default:
		contextPrompt = "Bối cảnh: Đang ở Seoul, Hàn Quốc. "
	}

	responseRules := "QUY TẮC TRẢ LỜI: " +
		"1. CHỈ trả lời bằng tiếng Hàn, KHÔNG dịch, KHÔNG giải thích. " +
		"2. Trả lời 2-4 câu tiếng Hàn, tự nhiên như người thật. " +
		"3. Thể hiện tính cách và cảm xúc rõ ràng. " +
		"4. Hỏi lại hoặc gợi ý để tiếp tục cuộc trò chuyện. " +
		"5. Dùng emoji phù hợp (😊, 😄, 🤔, 👍) nhưng không quá nhiều. " +
		"6. Phản ứng cụ thể với nội dung tin nhắn của người dùng. " +
		"7. Đưa ra thông tin chi tiết, hữu ích trong ngữ cảnh. " +
		"8. LUÔN sử dụng dấu câu rõ ràng cho từng câu: dấu chấm (.), dấu hỏi (?), dấu cảm thán (!) ở cuối câu phù hợp. Không được bỏ dấu câu."

	var examplePrompt string
	switch scenario {
	case "restaurant":
		examplePrompt = "\nVÍ DỤ CÁCH TRẢ LỜI:\n" +
			"User: 메뉴 추천해 주세요\n" +
			"AI: 오늘 김치찌개가 정말 맛있어요! 김치가 잘 익어서 국물이 깊고 시원해요. 매운 거 좋아하세요? 아니면 순한 제육볶음도 인기 많아요! 🍽️\n\n" +
			"User: 너무 싱거워요\n" +
			"AI: 아, 그러시구나! 그럼 매콤한 걸로 바꿔드릴게요. 김치찌개나 부대찌개 어떠세요? 아니면 양념이 진한 불고기도 맛있어요! 어떤 맛 선호하세요? 🌶️"
	case "shopping":
		examplePrompt = "\nVÍ DỤ CÁCH TRẢ LỜI:\n" +
			"User: 이거 얼마예요?\n" +
			"AI: 이 셔츠요? 원래 5만원인데 지금 30% 할인해서 3만 5천원이에요! 면 100%라서 착용감이 정말 좋아요. 사이즈 몇 찾으세요? 👕"
	case "direction":
		examplePrompt = "\nVÍ DỤ CÁCH TRẢ LỜI:\n" +
			"User: 명동 어떻게 가요?\n" +
			"AI: 여기서 명동까지는 지하철이 제일 빨라요! 2호선 타고 을지로입구에서 4호선으로 갈아타시면 돼요. 약 20분 걸려요. 아니면 택시로 15분? 지금 교통이 좀 막혀서 지하철 추천해요! 🚇"
	case "introduction":
		examplePrompt = "\nVÍ DỤ CÁCH TRẢ LỜI:\n" +
			"User: 안녕하세요!\n" +
			"AI: 안녕하세요! 처음 뵙겠습니다 😊 저는 지혜라고 해요. 이름이 뭐예요? 한국 처음이세요?"
	case "daily":
		examplePrompt = "\nVÍ DỤ CÁCH TRẢ LỜI:\n" +
			"User: 오늘 뭐 해?\n" +
			"AI: 야! 오늘 카페에서 공부하고 있어 😅 너무 심심해 죽겠다. 너는 뭐 해? 날씨 좋은데 같이 한강 갈래?"
	}

	return rolePrompt + personalityPrompt + difficultyPrompt + contextPrompt + responseRules + examplePrompt +
		"\n\n현재 상황에서 사용자가 말했습니다: \"" + userMessage + "\"" +
		"\n당신의 자연스러운 응답 (tiếng Hàn only):"
}

func (s *GeminiService) mockResponse(userMessage, scenario string) string {
	message := strings.ToLower(userMessage)

	switch scenario {
	case "restaurant":
		switch {
		case strings.Contains(message, "메뉴") || strings.Contains(message, "추천"):
			return s.randomRestaurantRecommendation()
		case strings.Contains(message, "싱겁") || strings.Contains(message, "다른") || strings.Contains(message, "조절"):
			return "아, 그러시구나! 그럼 매콤한 걸로 바꿔드릴게요. 김치찌개나 부대찌개 어떠세요? 양념이 진해서 맛있어요! 🌶️"
		case strings.Contains(message, "맛있"):
			return "오늘 특별히 제육볶음이랑 김치찌개가 정말 맛있어요! 제육볶음은 달콤매콤하고 고기가 부드러워요. 김치찌개는 국물이 깊어요. 어떤 걸 드셔보실래요? 😋"
		case strings.Contains(message, "얼마") || strings.Contains(message, "가격"):
			return "김치찌개는 8천원, 제육볶음은 만원, 불고기는 1만 5천원이에요. 밥이랑 반찬은 무료로 나와요! 가성비 정말 좋죠? 💰"
		case strings.Contains(message, "주문"):
			return "네! 뭘 드시고 싶으세요? 음료는 어떻게 하시겠어요? 콜라, 사이다, 맥주 다 있어요! 🥤"
		case strings.Contains(message, "계산"):
			return "네, 총 1만 5천원 나왔어요. 현금으로 하시겠어요, 아니면 카드로 결제하시겠어요? 💳"
		case strings.Contains(message, "안녕"):
			return "어서오세요! 몇 분이세요? 오늘 날씨 좋은데 따뜻한 국물 어떠세요? 😊"
		default:
			return "네, 말씀하세요! 뭔가 더 필요하신 거 있으면 언제든 불러주세요! 👍"
		}
	case "shopping":
		switch {
		case strings.Contains(message, "얼마") || strings.Contains(message, "가격"):
			return "이거요? 원래 5만원인데 지금 30% 할인해서 3만 5천원이에요! 면 100%라서 정말 편하고 세탁도 쉬워요. 👕"
		case strings.Contains(message, "사이즈"):
			return "S부터 XL까지 다 있어요! 한국 사이즈로 되어 있고, 실측 사이즈도 알려드릴 수 있어요. 몇 사이즈 찾으세요? 📏"
		case strings.Contains(message, "색깔") || strings.Contains(message, "컬러"):
			return "블랙, 화이트, 네이비, 베이지, 그레이 있어요. 네이비가 지금 제일 인기 많아요! 어떤 색 좋아하세요? 🎨"
		case strings.Contains(message, "안녕"):
			return "어서오세요! 오늘 새로 들어온 옷들 구경해 보세요. 정말 예쁜 거 많아요! ✨"
		default:
			return "네, 도와드릴게요! 어떤 스타일 찾으세요? 캐주얼이요, 정장이요? 👗"
		}
	case "direction":
		switch {
		case strings.Contains(message, "지하철") || strings.Contains(message, "역"):
			return "지하철이 제일 빨라요! 여기서 2호선 타고 15분 정도 걸려요. 2번 출구로 나오시면 바로 보이실 거예요! 🚇"
		case strings.Contains(message, "버스"):
			return "버스는 152번이나 360번 타시면 돼요. 저기 파란 표지판에서 기다리시면 5분마다 와요! 배차간격 짧아서 편해요. 🚌"
		case strings.Contains(message, "명동") || strings.Contains(message, "강남"):
			return "아, 거기요! 지하철로 20분 정도 걸려요. 2호선에서 4호선 갈아타시면 돼요. 택시로는 지금 교통 막혀서 30분 정도? 🗺️"
		case strings.Contains(message, "안녕") || strings.Contains(message, "실례"):
			return "네, 어디 가시려고요? 지하철이랑 버스 둘 다 방법 알려드릴게요! 😊"
		default:
			return "어디로 가시려고 하세요? 가장 빠른 길 알려드릴게요! 🚇"
		}
	case "introduction":
		switch {
		case strings.Contains(message, "이름"):
			return "저는 지혜라고 해요! 대학교 3학년이에요. 이름이 뭐예요? 한국 이름도 있어요? 😊"
		case strings.Contains(message, "어디") || strings.Contains(message, "나라"):
			return "저는 서울에서 태어나고 자랐어요! 홍대 근처에 살고 있어요. 어느 나라에서 오셨어요? 🇰🇷"
		case strings.Contains(message, "학교") || strings.Contains(message, "공부"):
			return "저는 연세대학교에서 국제학 전공하고 있어요! 외국어 배우는 걸 좋아해요. 뭐 공부하세요? 📚"
		case strings.Contains(message, "안녕"):
			return "안녕하세요! 만나서 정말 반가워요! 😄 한국 어떠세요? 처음 와보셨어요?"
		default:
			return "처음 뵙겠습니다! 잘 부탁드려요. 한국 생활은 어떠세요? 👋"
		}
	case "daily":
		switch {
		case strings.Contains(message, "날씨"):
			return "야, 오늘 날씨 진짜 좋다! 🌤️ 이런 날엔 한강 가서 치킨 먹고 싶어. 너도 같이 갈래?"
		case strings.Contains(message, "뭐 해") || strings.Contains(message, "뭐해"):
			return "나 지금 넷플릭스 보면서 배달음식 먹고 있어 😅 너무 게을러졌나? 너는 뭐 하고 있어?"
		case strings.Contains(message, "오늘"):
			return "야! 오늘 어땠어? 나는 하루 종일 과제하느라 죽는 줄 알았다 😵 너는 어땠어?"
		case strings.Contains(message, "주말") || strings.Contains(message, "토요일") || strings.Contains(message, "일요일"):
			return "주말이다! 진짜 행복해 😆 오늘 뭐 할 거야? 나는 친구들이랑 홍대 가려고 해!"
		case strings.Contains(message, "안녕"):
			return "야야! 오늘 기분 어때? 나는 아침부터 기분 좋아! ☀️"
		default:
			return "응응, 맞아! 너 진짜 재미있다 😄 또 뭔가 얘기해봐!"
		}
	default:
		return "네, 그렇군요! 더 이야기해 보세요! 😊"
	}
}

func (s *GeminiService) randomRestaurantRecommendation() string {
	recommendations := []string{
		"오늘 김치찌개가 정말 맛있어요! 김치가 잘 익어서 국물이 깊고 시원해요. 매운 거 좋아하세요? 🍽️",
		"제육볶음 어떠세요? 달콤매콤하고 고기가 부드러워요. 밥이랑 같이 드시면 정말 맛있어요! 🥩",
		"불고기 추천해요! 양념이 달콤하고 고기가 연해서 외국분들이 정말 좋아하세요. 어떠세요? 🥘",
		"순두부찌개는 어떠세요? 부드럽고 건강한 맛이에요. 매운 정도도 조절 가능해요! 🍲",
	}
	return recommendations[s.rand.Intn(len(recommendations))]
}
