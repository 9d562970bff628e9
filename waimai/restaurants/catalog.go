package restaurants

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadCatalog reads a restaurant catalog from a YAML file. With an empty
// path, or when the file does not exist, the built-in sample catalog is
// returned so the dev server works out of the box.
func LoadCatalog(path string) ([]RestaurantPayload, error) {
	if path == "" {
		return SampleCatalog(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return SampleCatalog(), nil
		}
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	var list []RestaurantPayload
	if err := yaml.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("catalog %s is empty", path)
	}
	return list, nil
}

// SampleCatalog returns the built-in dataset used when no catalog file is
// configured.
func SampleCatalog() []RestaurantPayload {
	return []RestaurantPayload{
		{ID: 1, Name: "川味小厨", Cuisine: "川菜", Price: 45, Rating: 4.5, DeliveryTime: 35,
			Description: "正宗川味，麻辣鲜香", SignatureDish: "麻婆豆腐、水煮鱼、宫保鸡丁",
			Reviews: "味道正宗，麻辣鲜香！|分量很足，性价比高|服务态度好，配送快"},
		{ID: 2, Name: "湘味轩", Cuisine: "湘菜", Price: 52, Rating: 4.6, DeliveryTime: 40,
			Description: "湖南风味，香辣下饭", SignatureDish: "剁椒鱼头、口味虾、小炒肉",
			Reviews: "湘菜很正宗，辣得过瘾|菜品新鲜，味道好|价格合理，值得推荐"},
		{ID: 3, Name: "粤式茶餐厅", Cuisine: "粤菜", Price: 68, Rating: 4.7, DeliveryTime: 45,
			Description: "广式茶点，精致美味", SignatureDish: "虾饺、烧卖、叉烧包",
			Reviews: "茶点很精致，味道正宗|环境不错，适合聚餐|价格稍贵但值得"},
		{ID: 4, Name: "东北饺子王", Cuisine: "东北菜", Price: 38, Rating: 4.4, DeliveryTime: 30,
			Description: "东北风味，分量十足", SignatureDish: "猪肉大葱饺子、锅包肉、地三鲜",
			Reviews: "饺子皮薄馅大，很好吃|分量真的很足|性价比超高"},
		{ID: 5, Name: "新疆大盘鸡", Cuisine: "新疆菜", Price: 55, Rating: 4.5, DeliveryTime: 50,
			Description: "新疆特色，大盘实惠", SignatureDish: "大盘鸡、羊肉串、手抓饭",
			Reviews: "大盘鸡分量足，味道好|羊肉串很香|配送时间稍长但值得等"},
		{ID: 6, Name: "重庆小面", Cuisine: "川菜", Price: 25, Rating: 4.3, DeliveryTime: 25,
			Description: "重庆小面，麻辣过瘾", SignatureDish: "重庆小面、豌杂面、红油抄手",
			Reviews: "小面很正宗，麻辣过瘾|价格便宜，性价比高|配送快，包装好"},
		{ID: 7, Name: "兰州拉面", Cuisine: "面食", Price: 22, Rating: 4.2, DeliveryTime: 28,
			Description: "兰州拉面，汤鲜味美", SignatureDish: "牛肉拉面、羊肉拉面、凉拌牛肉",
			Reviews: "拉面劲道，汤很鲜|价格实惠|配送及时"},
		{ID: 8, Name: "日式拉面屋", Cuisine: "日式", Price: 48, Rating: 4.4, DeliveryTime: 35,
			Description: "日式拉面，汤底浓郁", SignatureDish: "豚骨拉面、味增拉面、日式炸鸡",
			Reviews: "拉面汤底浓郁，很正宗|环境干净|价格适中"},
		{ID: 9, Name: "韩式烤肉", Cuisine: "韩式", Price: 85, Rating: 4.5, DeliveryTime: 45,
			Description: "韩式烤肉，肉质鲜嫩", SignatureDish: "韩式烤肉、石锅拌饭、泡菜汤",
			Reviews: "肉质新鲜，烤得很好|配菜丰富|价格稍贵但值得"},
		{ID: 10, Name: "海底捞火锅", Cuisine: "火锅", Price: 95, Rating: 4.7, DeliveryTime: 50,
			Description: "火锅连锁，服务贴心", SignatureDish: "毛肚、虾滑、牛肉片",
			Reviews: "服务很好，食材新鲜|配送包装好|价格稍贵"},
		{ID: 11, Name: "全聚德", Cuisine: "京菜", Price: 150, Rating: 4.8, DeliveryTime: 60,
			Description: "北京烤鸭，皮脆肉嫩", SignatureDish: "北京烤鸭、鸭架汤、京酱肉丝",
			Reviews: "烤鸭皮脆肉嫩|正宗北京味|价格较高但值得"},
		{ID: 12, Name: "外婆家", Cuisine: "杭帮菜", Price: 65, Rating: 4.5, DeliveryTime: 40,
			Description: "杭帮菜，清淡精致", SignatureDish: "西湖醋鱼、东坡肉、龙井虾仁",
			Reviews: "杭帮菜清淡|味道精致|环境好"},
	}
}
