package sample

import "log"

// ResistanceCodes maps a susceptibility call to resistant (1) or
// susceptible (0). Intermediate counts as resistant; FLAG as susceptible.
var ResistanceCodes = map[string]int{
	"I":    1,
	"R":    1,
	"S":    0,
	"FLAG": 0,
}

// EncodeResistance fills Resistant for every sample and drops samples with a
// call that has no code.
//
// TODO(gps): no unmapped call has been seen in any database release so far;
// confirm with the data team whether such rows should fail the run instead.
func EncodeResistance(samples []Sample) []Sample {
	kept := samples[:0]
	for _, s := range samples {
		s.Resistant = make([]int, len(s.SIR))
		ok := true
		for i, call := range s.SIR {
			code, known := ResistanceCodes[call]
			if !known {
				ok = false
				break
			}
			s.Resistant[i] = code
		}
		if ok {
			kept = append(kept, s)
		}
	}

	if dropped := len(samples) - len(kept); dropped > 0 {
		log.Printf("Dropped %d samples with an unrecognized resistance call, %d remain\n", dropped, len(kept))
	}

	return kept
}
