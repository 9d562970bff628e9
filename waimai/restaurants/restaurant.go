package restaurants

import "strings"

// RestaurantPayload is a restaurant record as it travels on the wire
// (assistant response, catalog file). Optional fields may be absent and
// reviews arrive as one '|'-joined string.
type RestaurantPayload struct {
	ID            int     `json:"id" yaml:"id"`
	Name          string  `json:"name" yaml:"name"`
	Cuisine       string  `json:"cuisine" yaml:"cuisine"`
	Price         float64 `json:"price" yaml:"price"`
	Rating        float64 `json:"rating" yaml:"rating"`
	DeliveryTime  int     `json:"delivery_time" yaml:"delivery_time"`
	Description   string  `json:"description" yaml:"description"`
	SignatureDish string  `json:"signature_dish,omitempty" yaml:"signature_dish,omitempty"`
	Reviews       string  `json:"reviews,omitempty" yaml:"reviews,omitempty"`
	Image1        string  `json:"image1,omitempty" yaml:"image1,omitempty"`
	Image2        string  `json:"image2,omitempty" yaml:"image2,omitempty"`
}

// Restaurant is the display-ready record attached to an assistant message.
// Image1/Image2 are "" when absent so callers can test presence with a
// plain comparison, and Reviews is already split into snippets.
type Restaurant struct {
	ID            int      `json:"id"`
	Name          string   `json:"name"`
	Cuisine       string   `json:"cuisine"`
	Price         float64  `json:"price"`
	Rating        float64  `json:"rating"`
	DeliveryTime  int      `json:"delivery_time"`
	Description   string   `json:"description"`
	SignatureDish string   `json:"signature_dish,omitempty"`
	Reviews       []string `json:"reviews,omitempty"`
	Image1        string   `json:"image1"`
	Image2        string   `json:"image2"`
}

// Normalize coerces a raw record into a display-ready Restaurant. It never
// fails on missing optional fields and is idempotent: normalizing the
// payload of an already-normalized record yields an identical result.
func Normalize(raw RestaurantPayload) Restaurant {
	return Restaurant{
		ID:            raw.ID,
		Name:          raw.Name,
		Cuisine:       raw.Cuisine,
		Price:         raw.Price,
		Rating:        raw.Rating,
		DeliveryTime:  raw.DeliveryTime,
		Description:   raw.Description,
		SignatureDish: raw.SignatureDish,
		Reviews:       SplitReviews(raw.Reviews),
		Image1:        raw.Image1,
		Image2:        raw.Image2,
	}
}

// NormalizeAll normalizes every element independently, preserving order.
func NormalizeAll(raws []RestaurantPayload) []Restaurant {
	if len(raws) == 0 {
		return nil
	}
	out := make([]Restaurant, 0, len(raws))
	for _, r := range raws {
		out = append(out, Normalize(r))
	}
	return out
}

// SplitReviews breaks a '|'-joined reviews string into independent
// snippets. Blank snippets from consecutive delimiters are dropped.
func SplitReviews(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, "|")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
