// waimai/controllers/recommend.go
package controllers

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"waimai/waimai/restaurants"
	"waimai/waimai/services/doubao"
	"waimai/waimai/utils/logging"
	"waimai/waimai/utils/types"
)

const maxHistoryTurns = 10

// RecommendController serves the assistant endpoints: catalog queries,
// criteria-based recommendation and chat recommendation. The Doubao client
// may be nil, in which case chat falls back to keyword matching.
type RecommendController struct {
	catalog []restaurants.RestaurantPayload
	llm     *doubao.Client
}

func NewRecommendController(catalog []restaurants.RestaurantPayload, llm *doubao.Client) *RecommendController {
	return &RecommendController{catalog: catalog, llm: llm}
}

func (c *RecommendController) Restaurants() []restaurants.RestaurantPayload {
	return c.catalog
}

func (c *RecommendController) Cuisines() []string {
	return restaurants.Cuisines(c.catalog)
}

// Recommend filters the catalog and generates a reason line for each of the
// top results.
func (c *RecommendController) Recommend(ctx context.Context, criteria restaurants.Criteria) *types.RecommendResponse {
	defer logging.LogDuration(ctx, "recommend")()

	results := restaurants.Filter(c.catalog, criteria)
	top := results
	if len(top) > 5 {
		top = top[:5]
	}
	recs := make([]types.Recommendation, 0, len(top))
	for _, r := range top {
		recs = append(recs, types.Recommendation{
			RestaurantID: r.ID,
			Name:         r.Name,
			Reason:       c.reasonFor(ctx, r),
		})
	}
	return &types.RecommendResponse{Data: results, Recommendations: recs}
}

func (c *RecommendController) reasonFor(ctx context.Context, r restaurants.RestaurantPayload) string {
	fallback := fmt.Sprintf("%s评分%v分，价格¥%v，配送%d分钟，值得一试！", r.Name, r.Rating, r.Price, r.DeliveryTime)
	if c.llm == nil {
		return fallback
	}
	prompt := fmt.Sprintf(
		"你是一个专业的外卖推荐助手。为以下餐厅生成一段简洁的推荐理由（30字以内）：\n\n餐厅：%s\n菜系：%s\n价格：%v元\n评分：%v\n配送时间：%d分钟\n特色：%s\n\n请给出推荐理由：",
		r.Name, r.Cuisine, r.Price, r.Rating, r.DeliveryTime, r.Description)
	reason, err := c.llm.Run(ctx, []doubao.ChatMessage{{Role: "user", Content: prompt}})
	if err != nil || strings.TrimSpace(reason) == "" {
		if err != nil && logging.ErrorLogger != nil {
			logging.ErrorLogger.Error("reason generation failed", zap.Error(err))
		}
		return fallback
	}
	return strings.TrimSpace(reason)
}

// Chat answers one conversational turn: understand the request via the
// model when available, pick the single best-matching restaurant from the
// catalog and attach dish images to it. Failures degrade to keyword
// matching; the reply is always a usable response, never an error.
func (c *RecommendController) Chat(ctx context.Context, req types.ChatRequest, location string) *types.ChatResponse {
	defer logging.LogDuration(ctx, "chat_recommend")()

	if c.llm == nil {
		return c.fallbackResponse("根据您的需求，我为您推荐以下餐厅：", req.Message)
	}

	messages := []doubao.ChatMessage{{Role: "system", Content: c.systemPrompt(location, req.Message)}}
	history := req.ConversationHistory
	if len(history) > maxHistoryTurns {
		history = history[len(history)-maxHistoryTurns:]
	}
	for _, entry := range history {
		messages = append(messages, doubao.ChatMessage{Role: string(entry.Role), Content: entry.Content})
	}
	messages = append(messages, doubao.ChatMessage{Role: "user", Content: req.Message})

	reply, err := c.llm.Run(ctx, messages)
	if err != nil {
		if logging.ErrorLogger != nil {
			logging.ErrorLogger.Error("doubao chat failed", zap.Error(err))
		}
		return c.fallbackResponse("根据您的需求，我为您推荐以下餐厅：", req.Message)
	}
	if strings.TrimSpace(reply) == "" {
		reply = "抱歉，AI暂时无法生成回复，请稍后重试。"
	}

	recommended := c.extractFromReply(reply, req.Message)
	if len(recommended) > 0 {
		recommended = []restaurants.RestaurantPayload{attachDishImages(recommended[0])}
	}
	return &types.ChatResponse{Message: reply, Restaurants: recommended, Type: "recommendation"}
}

func (c *RecommendController) fallbackResponse(message, userMessage string) *types.ChatResponse {
	picks := c.fallbackRecommend(userMessage)
	if len(picks) > 0 {
		picks = []restaurants.RestaurantPayload{attachDishImages(picks[0])}
	}
	return &types.ChatResponse{Message: message, Restaurants: picks, Type: "recommendation"}
}

func (c *RecommendController) systemPrompt(location, userMessage string) string {
	show := c.catalog
	if mentionsBBQ(userMessage) {
		// Surface grill restaurants first so the model can actually pick one.
		var bbq, rest []restaurants.RestaurantPayload
		for _, r := range c.catalog {
			if isBBQ(r) {
				bbq = append(bbq, r)
			} else {
				rest = append(rest, r)
			}
		}
		show = append(bbq, rest...)
	}
	if len(show) > 30 {
		show = show[:30]
	}
	var summary strings.Builder
	for i, r := range show {
		dish := r.SignatureDish
		if dish == "" {
			dish = "无"
		}
		fmt.Fprintf(&summary, "%d. %s（%s）- ¥%v，评分%v，配送%d分钟 - %s - 招牌菜：%s\n",
			i+1, r.Name, r.Cuisine, r.Price, r.Rating, r.DeliveryTime, r.Description, dish)
	}
	return fmt.Sprintf(`你是一个专业的外卖推荐助手，位于%s。你的任务是理解用户的需求，并从以下餐厅列表中推荐合适的餐厅。

可用餐厅列表：
%s
重要提示：
1. 必须严格匹配用户的需求。如果用户说"烧烤"，只能推荐包含"烤"字的餐厅
2. 如果用户提到价格范围，必须推荐价格在范围内的餐厅
3. 优先推荐完全匹配的餐厅，如果没有完全匹配的，再考虑相似类型
4. 只推荐1家最符合需求的餐厅

请用自然、友好的语言回复用户，明确提到推荐餐厅的名称并说明推荐理由。如果用户的需求不明确，可以询问更多细节。`, location, summary.String())
}

// extractFromReply matches catalog restaurant names mentioned in the model
// reply, falling back to keyword matching on the user message.
func (c *RecommendController) extractFromReply(reply, userMessage string) []restaurants.RestaurantPayload {
	for _, r := range c.catalog {
		if strings.Contains(reply, r.Name) {
			return []restaurants.RestaurantPayload{r}
		}
	}
	return c.fallbackRecommend(userMessage)
}

var priceHintPattern = regexp.MustCompile(`(\d+)\s*[元块]|人均\s*(\d+)|(\d+)\s*左右`)

// cuisineKeywords maps request keywords to the cuisines they imply.
var cuisineKeywords = map[string][]string{
	"烧烤": {"韩式", "京菜"},
	"川菜": {"川菜"},
	"辣":  {"川菜", "湘菜"},
	"麻":  {"川菜"},
	"火锅": {"火锅"},
	"湘菜": {"湘菜"},
	"湖南": {"湘菜"},
	"粤菜": {"粤菜"},
	"广式": {"粤菜"},
	"日式": {"日式"},
	"拉面": {"日式", "面食"},
	"寿司": {"日式"},
	"韩式": {"韩式"},
	"烤肉": {"韩式"},
	"快餐": {"快餐"},
	"面":  {"面食"},
	"饺子": {"东北菜", "面食"},
	"北京": {"京菜"},
	"烤鸭": {"京菜"},
}

// fallbackRecommend is the rule-based path used when the model is
// unavailable: cuisine keywords plus an optional price hint, best rated
// match first, always at least one pick.
func (c *RecommendController) fallbackRecommend(userMessage string) []restaurants.RestaurantPayload {
	msg := strings.ToLower(userMessage)

	var matched []string
	for keyword, cuisines := range cuisineKeywords {
		if strings.Contains(msg, keyword) {
			matched = append(matched, cuisines...)
		}
	}

	filtered := c.catalog
	if len(matched) > 0 {
		set := map[string]bool{}
		for _, cuisine := range matched {
			set[cuisine] = true
		}
		var byCuisine []restaurants.RestaurantPayload
		for _, r := range c.catalog {
			if set[r.Cuisine] {
				byCuisine = append(byCuisine, r)
			}
		}
		if len(byCuisine) > 0 {
			filtered = byCuisine
		}
	}

	if mentionsBBQ(msg) {
		var bbq []restaurants.RestaurantPayload
		for _, r := range filtered {
			if isBBQ(r) {
				bbq = append(bbq, r)
			}
		}
		if len(bbq) > 0 {
			filtered = bbq
		}
	}

	if lo, hi, ok := priceHint(userMessage); ok {
		var inRange []restaurants.RestaurantPayload
		for _, r := range filtered {
			if r.Price >= lo && r.Price <= hi {
				inRange = append(inRange, r)
			}
		}
		if len(inRange) > 0 {
			filtered = inRange
		}
	}

	if len(filtered) == 0 {
		filtered = c.catalog
	}
	sorted := make([]restaurants.RestaurantPayload, len(filtered))
	copy(sorted, filtered)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Rating > sorted[j].Rating })
	return sorted[:1]
}

// priceHint extracts a target price from phrases like "人均50" or
// "100左右", widened to a ±20 band.
func priceHint(message string) (lo, hi float64, ok bool) {
	match := priceHintPattern.FindStringSubmatch(message)
	if match == nil {
		return 0, 0, false
	}
	for _, group := range match[1:] {
		if group == "" {
			continue
		}
		target, err := strconv.ParseFloat(group, 64)
		if err != nil {
			continue
		}
		lo = target - 20
		if lo < 0 {
			lo = 0
		}
		return lo, target + 20, true
	}
	return 0, 0, false
}

func mentionsBBQ(message string) bool {
	return strings.Contains(message, "烧烤") || strings.Contains(message, "烤肉")
}

func isBBQ(r restaurants.RestaurantPayload) bool {
	return strings.Contains(r.Name, "烤") ||
		strings.Contains(r.Description, "烤") ||
		strings.Contains(r.SignatureDish, "烤")
}
