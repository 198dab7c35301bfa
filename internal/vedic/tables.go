package vedic

import (
	"errors"
	"fmt"
	"slices"
)

// MahadashaCycleYears is the length of the full Vimshottari cycle.
const MahadashaCycleYears = 120.0

// House describes the traditional meaning of a house.
type House struct {
	Number         int      `json:"number" yaml:"number"`
	Name           string   `json:"name" yaml:"name"`
	Significations []string `json:"significations" yaml:"significations"`
}

// TableSpec holds the raw lookup data used to build Tables.
type TableSpec struct {
	DashaOrder     []Body
	Periods        map[Body]float64
	Exaltation     map[Body]Sign
	Debilitation   map[Body]Sign
	OwnSigns       map[Body][]Sign
	NakshatraLords []Body
	CombustOrbs    map[Body]float64
	Houses         []House
}

// Tables is the read-only set of lookups shared by every component.
// Build it once with DefaultTables or NewTables and inject it.
type Tables struct {
	dashaOrder     []Body
	dashaIndex     map[Body]int
	periods        map[Body]float64
	exaltation     map[Body]Sign
	debilitation   map[Body]Sign
	ownSigns       map[Body][]Sign
	nakshatraLords []Body
	combustOrbs    map[Body]float64
	houses         []House
}

// NewTables validates the shape of spec and copies it into an immutable Tables.
// Missing periods are allowed here and reported by the consumers that need them.
func NewTables(spec TableSpec) (*Tables, error) {
	if len(spec.DashaOrder) != BodyCount {
		return nil, fmt.Errorf("dasha order must list %d bodies, got %d", BodyCount, len(spec.DashaOrder))
	}
	if len(spec.NakshatraLords) != NakshatraCount {
		return nil, fmt.Errorf("nakshatra lords must list %d entries, got %d", NakshatraCount, len(spec.NakshatraLords))
	}
	if len(spec.Houses) != SignCount {
		return nil, fmt.Errorf("house table must list %d entries, got %d", SignCount, len(spec.Houses))
	}

	t := &Tables{
		dashaOrder:     slices.Clone(spec.DashaOrder),
		dashaIndex:     make(map[Body]int, BodyCount),
		periods:        make(map[Body]float64, len(spec.Periods)),
		exaltation:     make(map[Body]Sign, len(spec.Exaltation)),
		debilitation:   make(map[Body]Sign, len(spec.Debilitation)),
		ownSigns:       make(map[Body][]Sign, len(spec.OwnSigns)),
		nakshatraLords: slices.Clone(spec.NakshatraLords),
		combustOrbs:    make(map[Body]float64, len(spec.CombustOrbs)),
		houses:         make([]House, len(spec.Houses)),
	}
	for i, b := range t.dashaOrder {
		if !b.Valid() {
			return nil, fmt.Errorf("dasha order contains invalid body %d", int(b))
		}
		if _, dup := t.dashaIndex[b]; dup {
			return nil, fmt.Errorf("dasha order lists %s twice", b)
		}
		t.dashaIndex[b] = i
	}
	for _, b := range t.nakshatraLords {
		if _, ok := t.dashaIndex[b]; !ok {
			return nil, errors.New("nakshatra lord missing from dasha order")
		}
	}
	for b, p := range spec.Periods {
		t.periods[b] = p
	}
	for b, s := range spec.Exaltation {
		t.exaltation[b] = s
	}
	for b, s := range spec.Debilitation {
		t.debilitation[b] = s
	}
	for b, s := range spec.OwnSigns {
		t.ownSigns[b] = slices.Clone(s)
	}
	for b, o := range spec.CombustOrbs {
		t.combustOrbs[b] = o
	}
	for i, h := range spec.Houses {
		h.Significations = slices.Clone(h.Significations)
		t.houses[i] = h
	}
	return t, nil
}

// DefaultTables returns the classical Parashari tables.
func DefaultTables() *Tables {
	order := []Body{Ketu, Venus, Sun, Moon, Mars, Rahu, Jupiter, Saturn, Mercury}

	lords := make([]Body, NakshatraCount)
	for i := range lords {
		lords[i] = order[i%len(order)]
	}

	t, err := NewTables(TableSpec{
		DashaOrder: order,
		Periods: map[Body]float64{
			Ketu: 7, Venus: 20, Sun: 6, Moon: 10, Mars: 7,
			Rahu: 18, Jupiter: 16, Saturn: 19, Mercury: 17,
		},
		Exaltation: map[Body]Sign{
			Sun: Aries, Moon: Taurus, Mars: Capricorn, Mercury: Virgo, Jupiter: Cancer,
			Venus: Pisces, Saturn: Libra, Rahu: Gemini, Ketu: Sagittarius,
		},
		Debilitation: map[Body]Sign{
			Sun: Libra, Moon: Scorpio, Mars: Cancer, Mercury: Pisces, Jupiter: Capricorn,
			Venus: Virgo, Saturn: Aries, Rahu: Sagittarius, Ketu: Gemini,
		},
		OwnSigns: map[Body][]Sign{
			Sun:     {Leo},
			Moon:    {Cancer},
			Mars:    {Aries, Scorpio},
			Mercury: {Gemini, Virgo},
			Jupiter: {Sagittarius, Pisces},
			Venus:   {Taurus, Libra},
			Saturn:  {Capricorn, Aquarius},
		},
		NakshatraLords: lords,
		CombustOrbs: map[Body]float64{
			Moon: 12, Mercury: 14, Venus: 10, Mars: 17, Jupiter: 11, Saturn: 15,
		},
		Houses: []House{
			{1, "Tanu", []string{"self", "body", "appearance", "personality"}},
			{2, "Dhana", []string{"wealth", "family", "speech", "food"}},
			{3, "Sahaja", []string{"siblings", "courage", "communication", "short journeys"}},
			{4, "Bandhu", []string{"mother", "home", "property", "comfort"}},
			{5, "Putra", []string{"children", "intelligence", "creativity", "past merit"}},
			{6, "Ari", []string{"enemies", "disease", "debts", "service"}},
			{7, "Yuvati", []string{"spouse", "partnership", "business", "travel"}},
			{8, "Randhra", []string{"longevity", "transformation", "hidden matters", "inheritance"}},
			{9, "Dharma", []string{"father", "fortune", "religion", "higher learning"}},
			{10, "Karma", []string{"career", "status", "authority", "reputation"}},
			{11, "Labha", []string{"gains", "income", "elder siblings", "aspirations"}},
			{12, "Vyaya", []string{"losses", "expenses", "foreign lands", "liberation"}},
		},
	})
	if err != nil {
		panic(err)
	}
	return t
}

// DashaOrder returns a copy of the fixed cyclic Vimshottari order.
func (t *Tables) DashaOrder() []Body {
	return slices.Clone(t.dashaOrder)
}

// DashaSequence returns the nine lords starting at start and cycling through
// the Vimshottari order.
func (t *Tables) DashaSequence(start Body) ([]Body, bool) {
	idx, ok := t.dashaIndex[start]
	if !ok {
		return nil, false
	}
	seq := make([]Body, len(t.dashaOrder))
	for i := range seq {
		seq[i] = t.dashaOrder[(idx+i)%len(t.dashaOrder)]
	}
	return seq, true
}

// Period returns the full Mahadasha length of b in years.
func (t *Tables) Period(b Body) (float64, bool) {
	p, ok := t.periods[b]
	return p, ok
}

// NakshatraLord returns the ruling body of the nakshatra at index 0..26.
func (t *Tables) NakshatraLord(index int) (Body, bool) {
	if index < 0 || index >= len(t.nakshatraLords) {
		return 0, false
	}
	return t.nakshatraLords[index], true
}

// Dignity classifies b in sign s. Exaltation wins over own sign.
func (t *Tables) Dignity(b Body, s Sign) Dignity {
	if ex, ok := t.exaltation[b]; ok && ex == s {
		return Exalted
	}
	if deb, ok := t.debilitation[b]; ok && deb == s {
		return Debilitated
	}
	if slices.Contains(t.ownSigns[b], s) {
		return OwnSign
	}
	return Neutral
}

// CombustOrb returns the maximum solar separation at which b is combust.
// The Sun and the nodes have no orb.
func (t *Tables) CombustOrb(b Body) (float64, bool) {
	o, ok := t.combustOrbs[b]
	return o, ok
}

// House returns the metadata of house n (1-12).
func (t *Tables) House(n int) (House, bool) {
	if n < 1 || n > len(t.houses) {
		return House{}, false
	}
	h := t.houses[n-1]
	h.Significations = slices.Clone(h.Significations)
	return h, true
}
