package restaurants

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCatalogDefaultsToSample(t *testing.T) {
	got, err := LoadCatalog("")
	if err != nil {
		t.Fatalf("LoadCatalog failed: %v", err)
	}
	if len(got) == 0 {
		t.Fatalf("sample catalog must not be empty")
	}
	seen := map[int]bool{}
	for _, r := range got {
		if seen[r.ID] {
			t.Errorf("duplicate id %d in sample catalog", r.ID)
		}
		seen[r.ID] = true
		if r.Name == "" || r.Cuisine == "" || r.Description == "" {
			t.Errorf("incomplete sample record: %+v", r)
		}
	}
}

func TestLoadCatalogMissingFileFallsBack(t *testing.T) {
	got, err := LoadCatalog(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file should fall back to sample, got error: %v", err)
	}
	if len(got) != len(SampleCatalog()) {
		t.Errorf("expected sample catalog, got %d entries", len(got))
	}
}

func TestLoadCatalogFromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	data := `
- id: 1
  name: 川味小厨
  cuisine: 川菜
  price: 45
  rating: 4.5
  delivery_time: 35
  description: 正宗川味
  signature_dish: 麻婆豆腐
  reviews: 好吃|实惠
- id: 2
  name: 湘味轩
  cuisine: 湘菜
  price: 52
  rating: 4.6
  delivery_time: 40
  description: 湖南风味
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	got, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("LoadCatalog failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	if got[0].Name != "川味小厨" || got[0].DeliveryTime != 35 {
		t.Errorf("unexpected first entry: %+v", got[0])
	}
	if got[1].SignatureDish != "" {
		t.Errorf("optional field should be empty, got %q", got[1].SignatureDish)
	}
}

func TestLoadCatalogRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("{not valid"), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	if _, err := LoadCatalog(path); err == nil {
		t.Errorf("expected error for malformed catalog")
	}
}
