// waimai/controllers/images.go
package controllers

import (
	"fmt"
	"regexp"
	"strings"

	"waimai/waimai/restaurants"
)

var dishSplitPattern = regexp.MustCompile(`[、，,\s]+`)

// dishSearchTerms maps signature-dish keywords to the search term used for
// the stock-photo URL. Anything unmapped falls back to a generic term.
var dishSearchTerms = map[string]string{
	"火锅":   "hotpot",
	"毛肚":   "hotpot",
	"虾滑":   "hotpot",
	"牛肉片":  "hotpot",
	"烤肉":   "barbecue",
	"羊肉串":  "barbecue",
	"韩式烤肉": "korean-barbecue",
	"石锅拌饭": "korean-food",
	"泡菜汤":  "korean-food",
	"北京烤鸭": "peking-duck",
	"鸭架汤":  "peking-duck",
	"麻婆豆腐": "mapo-tofu",
	"水煮鱼":  "sichuan-fish",
	"宫保鸡丁": "kung-pao-chicken",
	"剁椒鱼头": "hunan-fish",
	"豚骨拉面": "ramen",
	"味增拉面": "ramen",
	"牛肉拉面": "beef-noodles",
	"虾饺":   "dim-sum",
	"烧卖":   "dim-sum",
	"叉烧包":  "dim-sum",
	"大盘鸡":  "chicken-stew",
	"西湖醋鱼": "chinese-fish",
	"东坡肉":  "braised-pork",
}

const fallbackSearchTerm = "chinese-food"

// attachDishImages fills image1/image2 from the restaurant's signature
// dishes. With two or more dishes each gets its own picture; with one dish
// two different shots of it are used.
func attachDishImages(r restaurants.RestaurantPayload) restaurants.RestaurantPayload {
	keywords := dishKeywords(r.SignatureDish)
	switch {
	case len(keywords) >= 2:
		r.Image1 = foodImageURL(keywords[0], 0)
		r.Image2 = foodImageURL(keywords[1], 0)
	case len(keywords) == 1:
		r.Image1 = foodImageURL(keywords[0], 0)
		r.Image2 = foodImageURL(keywords[0], 1)
	default:
		if r.Image1 == "" {
			r.Image1 = foodImageURL("", 0)
		}
		if r.Image2 == "" {
			r.Image2 = foodImageURL("", 1)
		}
	}
	return r
}

// dishKeywords picks up to two dish names out of a signature-dish string.
func dishKeywords(signatureDish string) []string {
	if strings.TrimSpace(signatureDish) == "" {
		return nil
	}
	var out []string
	for _, dish := range dishSplitPattern.Split(signatureDish, -1) {
		dish = strings.TrimSpace(dish)
		if dish == "" {
			continue
		}
		out = append(out, dish)
		if len(out) == 2 {
			break
		}
	}
	return out
}

func foodImageURL(keyword string, offset int) string {
	term, ok := dishSearchTerms[keyword]
	if !ok {
		term = fallbackSearchTerm
	}
	return fmt.Sprintf("https://source.unsplash.com/400x300/?%s&sig=%d", term, offset)
}
