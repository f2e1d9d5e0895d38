package gst

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/lekha-engine/lekha-engine/internal/money"
	"github.com/lekha-engine/lekha-engine/internal/shared"
	_ "github.com/lekha-engine/lekha-engine/testing"
)

func TestComputeIntrastateSplit(t *testing.T) {
	split, err := Compute(Input{
		Amount:      decimal.NewFromInt(1000),
		RatePercent: decimal.NewFromInt(18),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !split.CGST.Equal(decimal.NewFromInt(90)) || !split.SGST.Equal(decimal.NewFromInt(90)) {
		t.Fatalf("expected CGST=SGST=90, got %s/%s", split.CGST, split.SGST)
	}
	if !split.IGST.IsZero() {
		t.Fatalf("intrastate must carry no IGST, got %s", split.IGST)
	}
	if !split.Total.Equal(decimal.NewFromInt(1180)) {
		t.Fatalf("expected total 1180, got %s", split.Total)
	}
}

func TestComputeInterstateSplit(t *testing.T) {
	split, err := Compute(Input{
		Amount:      decimal.NewFromInt(1000),
		RatePercent: decimal.NewFromInt(18),
		Interstate:  true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !split.IGST.Equal(decimal.NewFromInt(180)) {
		t.Fatalf("expected IGST 180, got %s", split.IGST)
	}
	if !split.CGST.IsZero() || !split.SGST.IsZero() {
		t.Fatalf("interstate must carry no CGST/SGST, got %s/%s", split.CGST, split.SGST)
	}
}

func TestComputeComponentIdentities(t *testing.T) {
	amount := decimal.RequireFromString("2499.99")
	for _, rate := range []int64{0, 5, 12, 18, 28} {
		for _, interstate := range []bool{false, true} {
			for _, inclusive := range []bool{false, true} {
				split, err := Compute(Input{
					Amount:      amount,
					RatePercent: decimal.NewFromInt(rate),
					Inclusive:   inclusive,
					Interstate:  interstate,
				})
				if err != nil {
					t.Fatalf("rate %d: %v", rate, err)
				}
				if !money.EqualWithin(split.Basic.Add(split.Tax), split.Total) {
					t.Fatalf("rate %d: basic+tax != total (%s + %s vs %s)", rate, split.Basic, split.Tax, split.Total)
				}
				components := split.CGST.Add(split.SGST).Add(split.IGST)
				if !money.EqualWithin(components, split.Tax) {
					t.Fatalf("rate %d: components %s != tax %s", rate, components, split.Tax)
				}
				if interstate && (!split.CGST.IsZero() || !split.SGST.IsZero()) {
					t.Fatalf("rate %d: jurisdiction exclusivity violated", rate)
				}
				if !interstate && !split.IGST.IsZero() {
					t.Fatalf("rate %d: jurisdiction exclusivity violated", rate)
				}
			}
		}
	}
}

func TestComputeInclusiveExclusiveRoundTrip(t *testing.T) {
	base := decimal.RequireFromString("1234.56")
	for _, rate := range []int64{0, 5, 12, 18, 28} {
		exclusive, err := Compute(Input{Amount: base, RatePercent: decimal.NewFromInt(rate)})
		if err != nil {
			t.Fatalf("rate %d exclusive: %v", rate, err)
		}
		inclusive, err := Compute(Input{
			Amount:      exclusive.Total,
			RatePercent: decimal.NewFromInt(rate),
			Inclusive:   true,
		})
		if err != nil {
			t.Fatalf("rate %d inclusive: %v", rate, err)
		}
		if !money.EqualWithin(inclusive.Basic, base) {
			t.Fatalf("rate %d: round trip lost the basic amount (%s vs %s)", rate, inclusive.Basic, base)
		}
	}
}

func TestComputeZeroRateInclusiveIsSafe(t *testing.T) {
	split, err := Compute(Input{
		Amount:      decimal.NewFromInt(500),
		RatePercent: decimal.Zero,
		Inclusive:   true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !split.Basic.Equal(decimal.NewFromInt(500)) || !split.Tax.IsZero() {
		t.Fatalf("zero rate must pass the amount through, got basic %s tax %s", split.Basic, split.Tax)
	}
}

func TestComputeRejectsBadInput(t *testing.T) {
	_, err := Compute(Input{Amount: decimal.NewFromInt(1000), RatePercent: decimal.NewFromInt(15)})
	if shared.KindOf(err) != shared.KindNotAScheduledRate {
		t.Fatalf("expected NotAScheduledRate, got %v", err)
	}
	_, err = Compute(Input{Amount: decimal.NewFromInt(-1), RatePercent: decimal.NewFromInt(18)})
	if shared.KindOf(err) != shared.KindNegative {
		t.Fatalf("expected Negative, got %v", err)
	}
}

func TestIsInterstateResolution(t *testing.T) {
	cases := []struct {
		from, to string
		explicit bool
		want     bool
	}{
		{"Maharashtra", "Gujarat", false, true},
		{" maharashtra ", "Maharashtra", false, false},
		{" maharashtra ", "Maharashtra", true, true},
		{"", "", true, true},
		{"", "", false, false},
		{"Maharashtra", "", false, false},
		{"Maharashtra", "", true, true},
	}
	for _, tc := range cases {
		if got := IsInterstate(tc.from, tc.to, tc.explicit); got != tc.want {
			t.Fatalf("IsInterstate(%q, %q, %v) = %v, want %v", tc.from, tc.to, tc.explicit, got, tc.want)
		}
	}
}

func TestComputeCarriesReverseChargeAndMetadata(t *testing.T) {
	split, err := Compute(Input{
		Amount:        decimal.NewFromInt(1000),
		RatePercent:   decimal.NewFromInt(5),
		ReverseCharge: true,
		HSNCode:       "1001",
		Description:   "Wheat",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !split.ReverseCharge || split.HSNCode != "1001" || split.Description != "Wheat" {
		t.Fatalf("metadata not carried: %+v", split)
	}
	if !split.Tax.Equal(decimal.NewFromInt(50)) {
		t.Fatalf("reverse charge must not change the arithmetic, got tax %s", split.Tax)
	}
}
