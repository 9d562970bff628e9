// waimai/render/adapter.go
package render

import (
	"fmt"
	"strings"

	"waimai/waimai/restaurants"
	"waimai/waimai/utils/types"
)

type ImageState string

const (
	ImageLoading ImageState = "loading"
	ImageOK      ImageState = "ok"
	ImageFailed  ImageState = "failed"
)

// ImagePlaceholder replaces any image that failed to load; a broken image
// is never shown.
const ImagePlaceholder = "图片加载失败"

// ImageSlot is one dish-image position on a card with its explicit display
// state, so the renderer picks the element declaratively instead of
// patching the output after a load failure.
type ImageSlot struct {
	URL   string
	State ImageState
}

// Card is a display-ready restaurant card.
type Card struct {
	ID            int
	Name          string
	Cuisine       string
	Price         float64
	Rating        float64
	DeliveryTime  int
	SignatureDish string
	Images        []ImageSlot
	Reviews       []string
	Description   string
}

// View is the renderable form of one message bubble. Typing marks the
// transient indicator shown while a request is outstanding; it never comes
// from the persisted log.
type View struct {
	Role   types.Role
	Avatar string
	Text   string
	Cards  []Card
	Typing bool
}

// MessageView maps a log message to its renderable view.
func MessageView(msg types.Message) View {
	v := View{
		Role:   msg.Role,
		Avatar: avatar(msg.Role),
		Text:   msg.Content,
	}
	for _, r := range msg.Restaurants {
		v.Cards = append(v.Cards, newCard(r))
	}
	return v
}

// TypingView is the placeholder bubble shown while the controller is busy.
func TypingView() View {
	return View{Role: types.RoleAssistant, Avatar: avatar(types.RoleAssistant), Typing: true}
}

// Views renders the whole log, appending the typing indicator after the
// real messages while busy.
func Views(messages []types.Message, busy bool) []View {
	out := make([]View, 0, len(messages)+1)
	for _, msg := range messages {
		out = append(out, MessageView(msg))
	}
	if busy {
		out = append(out, TypingView())
	}
	return out
}

func newCard(r restaurants.Restaurant) Card {
	c := Card{
		ID:            r.ID,
		Name:          r.Name,
		Cuisine:       r.Cuisine,
		Price:         r.Price,
		Rating:        r.Rating,
		DeliveryTime:  r.DeliveryTime,
		SignatureDish: r.SignatureDish,
		Reviews:       r.Reviews,
		Description:   r.Description,
	}
	// Empty URLs never get a slot; presence stays a single check.
	for _, url := range []string{r.Image1, r.Image2} {
		if url != "" {
			c.Images = append(c.Images, ImageSlot{URL: url, State: ImageLoading})
		}
	}
	return c
}

func avatar(role types.Role) string {
	if role == types.RoleUser {
		return "👤"
	}
	return "🤖"
}

// String renders a view as terminal text, one block per bubble.
func (v View) String() string {
	var b strings.Builder
	if v.Typing {
		b.WriteString(v.Avatar + " 正在输入…")
		return b.String()
	}
	b.WriteString(v.Avatar + " " + v.Text)
	for _, card := range v.Cards {
		b.WriteString("\n" + card.String())
	}
	return b.String()
}

// String renders one restaurant card.
func (c Card) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "  ── %s ［%s］\n", c.Name, c.Cuisine)
	fmt.Fprintf(&b, "     💰 人均¥%v  ⭐ %v  ⏱️ %d分钟\n", c.Price, c.Rating, c.DeliveryTime)
	if c.SignatureDish != "" {
		fmt.Fprintf(&b, "     🍜 招牌菜：%s\n", c.SignatureDish)
		for _, img := range c.Images {
			switch img.State {
			case ImageFailed:
				fmt.Fprintf(&b, "     [%s]\n", ImagePlaceholder)
			default:
				fmt.Fprintf(&b, "     🖼️ %s\n", img.URL)
			}
		}
	}
	if len(c.Reviews) > 0 {
		b.WriteString("     💬 用户评价\n")
		for _, review := range c.Reviews {
			fmt.Fprintf(&b, "       💭 %s\n", review)
		}
	}
	fmt.Fprintf(&b, "     %s", c.Description)
	return b.String()
}
