// Command-line chat client for the food-recommendation assistant
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"waimai/waimai/config"
	"waimai/waimai/render"
	"waimai/waimai/restaurants"
	"waimai/waimai/services/assistant"
	"waimai/waimai/session"
	"waimai/waimai/utils/logging"
)

func main() {
	logging.InitLogger()
	cfg := config.LoadConfig()

	args := os.Args[1:]
	if len(args) < 1 || args[0] != "chat" {
		fmt.Println("waimai CLI usage:")
		fmt.Println("  waimai chat   # Chat with the food-recommendation assistant")
		os.Exit(1)
	}

	client := assistant.NewClient(cfg)
	ctrl := session.NewController(client)
	prober := render.NewProber(5 * time.Second)
	sessionID := fmt.Sprintf("cli-%s", uuid.New().String()[:8])

	logging.AppLogger.Info("waimai chat session started",
		zap.String("sessionID", sessionID),
		zap.String("assistant", cfg.AssistantBaseURL),
	)

	fmt.Printf("\n🍽️ AI外卖推荐助手\n\n")
	fmt.Println("Session:", sessionID)
	fmt.Println()
	fmt.Println("You can:")
	fmt.Println("  - 直接输入想吃什么（例如：我想吃辣的，人均50左右）")
	fmt.Println("  - /list              查看全部餐厅")
	fmt.Println("  - /cuisines          查看全部菜系")
	fmt.Println("  - /filter <关键词>    按关键词筛选推荐")
	fmt.Println()
	fmt.Println("Type your message or 'exit' to quit.")
	fmt.Println()

	// Show the seeded greeting.
	for _, view := range render.Views(ctrl.Messages(), false) {
		fmt.Println(view.String())
	}
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("waimai> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "exit" || line == "quit" {
			fmt.Println("👋 再见！")
			break
		}
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "/") {
			runCommand(client, line)
			continue
		}

		before := len(ctrl.Messages())
		fmt.Println(render.TypingView().String())
		ctrl.Submit(context.Background(), line)

		for _, msg := range ctrl.Messages()[before:] {
			view := render.MessageView(msg)
			prober.Resolve(context.Background(), view.Cards)
			fmt.Println(view.String())
		}
		fmt.Println()
	}
}

func runCommand(client *assistant.Client, line string) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	switch {
	case line == "/list":
		list, err := client.Restaurants(ctx)
		if err != nil {
			fmt.Println("错误：", err)
			return
		}
		for _, r := range list {
			fmt.Printf("  %d. %s（%s）- ¥%v，评分%v，配送%d分钟\n",
				r.ID, r.Name, r.Cuisine, r.Price, r.Rating, r.DeliveryTime)
		}
	case line == "/cuisines":
		cuisines, err := client.Cuisines(ctx)
		if err != nil {
			fmt.Println("错误：", err)
			return
		}
		fmt.Println("  " + strings.Join(cuisines, "、"))
	case strings.HasPrefix(line, "/filter"):
		keyword := strings.TrimSpace(strings.TrimPrefix(line, "/filter"))
		resp, err := client.Recommend(ctx, restaurants.Criteria{Keyword: keyword})
		if err != nil {
			fmt.Println("错误：", err)
			return
		}
		if len(resp.Recommendations) == 0 {
			fmt.Println("  😕 没有找到符合条件的餐厅，请尝试调整筛选条件")
			return
		}
		for _, rec := range resp.Recommendations {
			fmt.Printf("  %s：%s\n", rec.Name, rec.Reason)
		}
	default:
		fmt.Println("未知命令：", line)
	}
}
