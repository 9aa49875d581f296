package experiment

import (
	"testing"

	"dineWise/domain"
)

func recordFeedbackN(a *Assigner, variant string, positive, negative int) {
	for i := 0; i < positive; i++ {
		a.RecordFeedback(variant, true)
	}
	for i := 0; i < negative; i++ {
		a.RecordFeedback(variant, false)
	}
}

func TestAssignVariantHonorsHint(t *testing.T) {
	a := NewAssigner()

	if got := a.AssignVariant(domain.VariantA); got != domain.VariantA {
		t.Errorf("hint A returned %s", got)
	}
	if got := a.AssignVariant(domain.VariantB); got != domain.VariantB {
		t.Errorf("hint B returned %s", got)
	}

	// honored hints are not fresh draws and must not be logged
	if n := len(a.Assignments()); n != 0 {
		t.Errorf("assignment log has %d entries, want 0", n)
	}
}

func TestAssignVariantDrawsValidVariant(t *testing.T) {
	a := NewAssigner()

	for i := 0; i < 50; i++ {
		got := a.AssignVariant("")
		if got != domain.VariantA && got != domain.VariantB {
			t.Fatalf("drew invalid variant %q", got)
		}
	}

	if n := len(a.Assignments()); n != 50 {
		t.Errorf("assignment log has %d entries, want 50", n)
	}
}

func TestVariantWeights(t *testing.T) {
	a := NewAssigner()

	wa := a.VariantWeights(domain.VariantA)
	if wa.Rating != 0.6 || wa.Cuisine != 0.3 || wa.Price != 0.1 {
		t.Errorf("variant A weights = %+v", wa)
	}

	wb := a.VariantWeights(domain.VariantB)
	if wb.Rating != 0.4 || wb.Cuisine != 0.3 || wb.Price != 0.3 {
		t.Errorf("variant B weights = %+v", wb)
	}

	if a.VariantWeights("bogus") != wa {
		t.Error("unknown variant should fall back to variant A weights")
	}
}

func TestStatsWinnerA(t *testing.T) {
	a := NewAssigner()
	recordFeedbackN(a, domain.VariantA, 8, 2) // 80%
	recordFeedbackN(a, domain.VariantB, 5, 5) // 50%

	if got := a.Stats().Winner; got != domain.VariantA {
		t.Errorf("winner = %q, want A", got)
	}
}

func TestStatsWinnerB(t *testing.T) {
	a := NewAssigner()
	recordFeedbackN(a, domain.VariantA, 5, 5) // 50%
	recordFeedbackN(a, domain.VariantB, 6, 4) // 60%

	if got := a.Stats().Winner; got != domain.VariantB {
		t.Errorf("winner = %q, want B", got)
	}
}

func TestStatsNoWinnerWithinThreshold(t *testing.T) {
	a := NewAssigner()
	recordFeedbackN(a, domain.VariantA, 52, 48) // 52%
	recordFeedbackN(a, domain.VariantB, 50, 50) // 50%, gap under 5pp

	if got := a.Stats().Winner; got != "" {
		t.Errorf("winner = %q, want none", got)
	}
}

func TestStatsNoWinnerOneSidedFeedback(t *testing.T) {
	a := NewAssigner()
	recordFeedbackN(a, domain.VariantA, 10, 0)

	if got := a.Stats().Winner; got != "" {
		t.Errorf("winner = %q, want none until both variants have feedback", got)
	}
}

func TestStatsSatisfactionRounding(t *testing.T) {
	a := NewAssigner()
	recordFeedbackN(a, domain.VariantA, 2, 1)

	stats := a.Stats()
	if stats.A.SatisfactionRate != 66.7 {
		t.Errorf("satisfaction rate = %v, want 66.7", stats.A.SatisfactionRate)
	}
	if stats.A.TotalFeedback != 3 {
		t.Errorf("total feedback = %d, want 3", stats.A.TotalFeedback)
	}
}

func TestReset(t *testing.T) {
	a := NewAssigner()
	a.AssignVariant("")
	a.RecordSearch(domain.VariantA)
	recordFeedbackN(a, domain.VariantA, 1, 1)

	a.Reset()

	stats := a.Stats()
	if stats.A.Searches != 0 || stats.A.TotalFeedback != 0 {
		t.Errorf("counters not cleared: %+v", stats.A)
	}
	if len(a.Assignments()) != 0 {
		t.Error("assignment log not cleared")
	}
}
