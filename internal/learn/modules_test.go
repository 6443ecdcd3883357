package learn

import (
	"testing"

	"hela/internal/testutil"
)

func TestModules(t *testing.T) {
	t.Run("all_resources", func(t *testing.T) {
		all := Modules("all")
		if len(all) != 8 {
			t.Fatalf("expected 8 modules, got %d", len(all))
		}
		if Modules("")[0].ID != all[0].ID {
			t.Error("empty category should behave like all")
		}
	})

	t.Run("category_filter", func(t *testing.T) {
		budgeting := Modules("budgeting")
		if len(budgeting) != 2 {
			t.Fatalf("expected 2 budgeting modules, got %d", len(budgeting))
		}
		for _, m := range budgeting {
			if m.Category != "budgeting" {
				t.Errorf("unexpected category %s", m.Category)
			}
		}
	})

	t.Run("unknown_category_is_empty", func(t *testing.T) {
		if got := Modules("crypto"); len(got) != 0 {
			t.Errorf("expected no modules, got %d", len(got))
		}
	})

	t.Run("returned_slice_is_a_copy", func(t *testing.T) {
		first := Modules("all")
		first[0].Title = "mutated"

		if Modules("all")[0].Title == "mutated" {
			t.Error("caller mutation leaked into the catalog")
		}
	})
}

func TestModuleByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		m, err := ModuleByID("5")
		testutil.AssertNoError(t, err)
		if m.Title != "Investing in NSE: Beginner's Guide" {
			t.Errorf("unexpected module: %s", m.Title)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		_, err := ModuleByID("99")
		testutil.AssertAppError(t, err, "MODULE_NOT_FOUND")
	})
}
