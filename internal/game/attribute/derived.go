package attribute

import "math"

// Bases computes the formula result for every secondary attribute.
//
// HP=ST, FP=HT, Will=Per=IQ, BasicSpeed=(DX+HT)/4 unrounded, BasicMove=floor(BasicSpeed base).
func Bases(p Primaries) map[string]float64 {
	speed := float64(p.Value(DX)+p.Value(HT)) / 4
	return map[string]float64{
		HP:         float64(p.Value(ST)),
		FP:         float64(p.Value(HT)),
		Will:       float64(p.Value(IQ)),
		Per:        float64(p.Value(IQ)),
		BasicSpeed: speed,
		BasicMove:  math.Floor(speed),
	}
}

// Rebase recomputes every secondary base from primaries, carrying each
// attribute's previous delta onto the new base.
//
// Precondition: previous holds every ID in SecondaryIDs.
// Postcondition: for every id, result[id].Delta() == previous[id].Delta() and
// result[id].Base == Bases(primaries)[id]. previous is not modified.
func Rebase(primaries Primaries, previous Secondaries) Secondaries {
	bases := Bases(primaries)
	out := make(Secondaries, len(previous))
	for id, prev := range previous {
		base, ok := bases[id]
		if !ok {
			out[id] = prev
			continue
		}
		out[id] = Secondary{
			ID:           prev.ID,
			Base:         base,
			Value:        base + prev.Delta(),
			CostPerLevel: prev.CostPerLevel,
		}
	}
	return out
}
