package config

import "testing"

// TestGrowthStagesOrdered 阶段必须按 StartAge 升序，且每个阶段的成长区间非空
func TestGrowthStagesOrdered(t *testing.T) {
	if len(GrowthStages) != 3 {
		t.Fatalf("期望 3 个生长阶段，实际 %d", len(GrowthStages))
	}

	for i, stage := range GrowthStages {
		if stage.FullSizeAge <= stage.StartAge {
			t.Errorf("阶段 %s: FullSizeAge(%d) 应大于 StartAge(%d)", stage.Name, stage.FullSizeAge, stage.StartAge)
		}
		if i > 0 && stage.StartAge <= GrowthStages[i-1].StartAge {
			t.Errorf("阶段 %s 的 StartAge 未严格递增", stage.Name)
		}
	}
}

func TestGrowthStageNames(t *testing.T) {
	want := []string{"seed", "sprout", "flower"}
	for i, name := range want {
		if GrowthStages[i].Name != name {
			t.Errorf("GrowthStages[%d].Name = %q, 期望 %q", i, GrowthStages[i].Name, name)
		}
	}
}
