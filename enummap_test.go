package enummap

import (
	"errors"
	"testing"
)

type color int

const (
	red color = iota
	green
	blue
	yellow
)

type planet int

const (
	mercury planet = iota
	venus
	earth
	mars
	jupiter
)

func newColorMapping() *Mapping[color] {
	return New(
		Pair(red, "0xff0000"),
		Pair(green, "0x00ff00"),
		Pair(blue, "0x0000ff"),
	)
}

func TestNewSized(t *testing.T) {
	m, err := NewSized(3,
		Pair(red, "0xff0000"),
		Pair(green, "0x00ff00"),
		Pair(blue, "0x0000ff"),
	)
	if err != nil {
		t.Fatalf("NewSized with matching size returned error: %v", err)
	}
	if m.Len() != 3 {
		t.Errorf("Len() = %d, want 3", m.Len())
	}
}

func TestNewSizedMismatch(t *testing.T) {
	m, err := NewSized(2,
		Pair(red, "0xff0000"),
		Pair(green, "0x00ff00"),
		Pair(blue, "0x0000ff"),
	)
	if m != nil {
		t.Fatal("expected no mapping to be built on size mismatch")
	}
	if !errors.Is(err, ErrMalformedConstruction) {
		t.Errorf("expected ErrMalformedConstruction, got %v", err)
	}

	var mapErr *MapError
	if !errors.As(err, &mapErr) {
		t.Fatalf("expected *MapError, got %T", err)
	}
	if mapErr.Kind != KindMalformedConstruction {
		t.Errorf("Kind = %q, want %q", mapErr.Kind, KindMalformedConstruction)
	}
}

func TestValueAndLabel(t *testing.T) {
	m := newColorMapping()

	tests := []struct {
		label string
		want  color
	}{
		{"0xff0000", red},
		{"0x00ff00", green},
		{"0x0000ff", blue},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, err := m.Value(tt.label)
			if err != nil {
				t.Fatalf("Value(%q) returned error: %v", tt.label, err)
			}
			if got != tt.want {
				t.Errorf("Value(%q) = %v, want %v", tt.label, got, tt.want)
			}

			label, err := m.Label(tt.want)
			if err != nil {
				t.Fatalf("Label(%v) returned error: %v", tt.want, err)
			}
			if label != tt.label {
				t.Errorf("Label(%v) = %q, want %q", tt.want, label, tt.label)
			}
		})
	}
}

func TestValueUnknownLabel(t *testing.T) {
	m := newColorMapping()

	_, err := m.Value("0xabcdef")
	if !errors.Is(err, ErrInvalidLabel) {
		t.Errorf("Value of unknown label: expected ErrInvalidLabel, got %v", err)
	}
}

func TestLabelUnknownValue(t *testing.T) {
	m := newColorMapping()

	_, err := m.Label(yellow)
	if !errors.Is(err, ErrInvalidValue) {
		t.Errorf("Label of unknown value: expected ErrInvalidValue, got %v", err)
	}
	if errors.Is(err, ErrInvalidLabel) {
		t.Error("value-side failure must not match ErrInvalidLabel")
	}
}

func TestValueFold(t *testing.T) {
	m := New(
		Pair(earth, "Earth"),
		Pair(mars, "Mars"),
	)

	tests := []struct {
		name  string
		label string
		want  planet
	}{
		{"lowercase", "earth", earth},
		{"uppercase", "EARTH", earth},
		{"mixed case", "eArTh", earth},
		{"exact case", "Earth", earth},
		{"other entry", "MARS", mars},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := m.ValueFold(tt.label)
			if err != nil {
				t.Fatalf("ValueFold(%q) returned error: %v", tt.label, err)
			}
			if got != tt.want {
				t.Errorf("ValueFold(%q) = %v, want %v", tt.label, got, tt.want)
			}
		})
	}

	if _, err := m.ValueFold("pluto"); !errors.Is(err, ErrInvalidLabel) {
		t.Errorf("ValueFold of unknown label: expected ErrInvalidLabel, got %v", err)
	}
}

func TestDuplicateLabels(t *testing.T) {
	m := New(
		Pair(mercury, "Terrestrial"),
		Pair(venus, "Terrestrial"),
		Pair(earth, "Terrestrial"),
		Pair(mars, "Terrestrial"),
		Pair(jupiter, "Gas Giant"),
	)

	all := m.AllValues("Terrestrial")
	want := []planet{mercury, venus, earth, mars}
	if len(all) != len(want) {
		t.Fatalf("AllValues returned %d values, want %d", len(all), len(want))
	}
	for i, v := range want {
		if all[i] != v {
			t.Errorf("AllValues[%d] = %v, want %v", i, all[i], v)
		}
	}

	first, err := m.FirstValue("Terrestrial")
	if err != nil {
		t.Fatalf("FirstValue returned error: %v", err)
	}
	if first != mercury {
		t.Errorf("FirstValue = %v, want %v", first, mercury)
	}

	// The hash index must agree with the linear first-match tie-break.
	indexed, err := m.Value("Terrestrial")
	if err != nil {
		t.Fatalf("Value returned error: %v", err)
	}
	if indexed != mercury {
		t.Errorf("Value = %v, want first entry %v", indexed, mercury)
	}
}

func TestAllValuesAbsent(t *testing.T) {
	m := newColorMapping()

	all := m.AllValues("nonexistent")
	if all == nil {
		t.Fatal("AllValues of absent label must return an empty slice, not nil")
	}
	if len(all) != 0 {
		t.Errorf("AllValues of absent label returned %d values", len(all))
	}
}

func TestDuplicateValues(t *testing.T) {
	m := New(
		Pair(red, "crimson"),
		Pair(red, "scarlet"),
	)

	label, err := m.Label(red)
	if err != nil {
		t.Fatalf("Label returned error: %v", err)
	}
	if label != "crimson" {
		t.Errorf("Label = %q, want first entry %q", label, "crimson")
	}
}

func TestAccessorsPreserveOrder(t *testing.T) {
	m := newColorMapping()

	wantLabels := []string{"0xff0000", "0x00ff00", "0x0000ff"}
	gotLabels := m.Labels()
	if len(gotLabels) != len(wantLabels) {
		t.Fatalf("Labels returned %d labels, want %d", len(gotLabels), len(wantLabels))
	}
	for i, l := range wantLabels {
		if gotLabels[i] != l {
			t.Errorf("Labels[%d] = %q, want %q", i, gotLabels[i], l)
		}
	}

	wantValues := []color{red, green, blue}
	gotValues := m.Values()
	for i, v := range wantValues {
		if gotValues[i] != v {
			t.Errorf("Values[%d] = %v, want %v", i, gotValues[i], v)
		}
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	m := newColorMapping()

	labels := m.Labels()
	labels[0] = "mutated"
	if got := m.Labels()[0]; got != "0xff0000" {
		t.Errorf("mutating the returned slice reached the table: Labels[0] = %q", got)
	}
}

func TestContains(t *testing.T) {
	m := newColorMapping()

	if !m.ContainsValue(green) {
		t.Error("ContainsValue(green) = false, want true")
	}
	if m.ContainsValue(yellow) {
		t.Error("ContainsValue(yellow) = true, want false")
	}
	if !m.ContainsLabel("0x0000ff") {
		t.Error("ContainsLabel(0x0000ff) = false, want true")
	}
	if m.ContainsLabel("0X0000FF") {
		t.Error("ContainsLabel must compare exactly, not case-insensitively")
	}
}

func TestString(t *testing.T) {
	m := newColorMapping()

	want := "Mapping{0xff0000, 0x00ff00, 0x0000ff}"
	if got := m.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestEmptyMapping(t *testing.T) {
	m := New[color]()

	if m.Len() != 0 {
		t.Errorf("Len() = %d, want 0", m.Len())
	}
	if _, err := m.Value("anything"); !errors.Is(err, ErrInvalidLabel) {
		t.Errorf("Value on empty mapping: expected ErrInvalidLabel, got %v", err)
	}
	if _, err := m.Label(red); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("Label on empty mapping: expected ErrInvalidValue, got %v", err)
	}
	if got := m.String(); got != "Mapping{}" {
		t.Errorf("String() = %q, want %q", got, "Mapping{}")
	}

	visits := 0
	m.ForEachPair(func(color, string) { visits++ })
	if visits != 0 {
		t.Errorf("ForEachPair on empty mapping visited %d entries", visits)
	}
}

func TestCallerSliceIsolation(t *testing.T) {
	entries := []Entry[color]{
		Pair(red, "0xff0000"),
		Pair(green, "0x00ff00"),
	}
	m := New(entries...)

	entries[0] = Pair(blue, "0x0000ff")

	if got, err := m.Value("0xff0000"); err != nil || got != red {
		t.Errorf("Value(0xff0000) = %v, %v; want red, nil", got, err)
	}
}
