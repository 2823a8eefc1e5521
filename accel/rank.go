package accel

// byFrequency lists printable ASCII bytes from most to least common in mixed
// English text and source code.
const byFrequency = " etaoisnrlhcdu.,mp_f\"ygb=()0-1w/'2:;vk{}*x3>5<49[]876#&+!|jz$?q%@^`\\~"

// byteRanks maps each byte to an approximate frequency rank. Lower ranks are
// rarer, which makes them better anchors for substring search.
var byteRanks = buildRanks()

func buildRanks() (ranks [256]byte) {
	// Unlisted printable ASCII and high bytes are uncommon in text; most
	// control bytes are rarer still.
	for b := 0x20; b < 0x7f; b++ {
		ranks[b] = 20
	}
	for b := 0x80; b <= 0xff; b++ {
		ranks[b] = 5
	}
	ranks['\t'], ranks['\n'], ranks['\r'] = 150, 180, 60

	rank := 255
	for i := 0; i < len(byFrequency); i++ {
		ranks[byFrequency[i]] = byte(rank)
		rank -= 3
	}
	return ranks
}

// rareIndex returns the position of the rarest byte in needle. Ties go to the
// later position, so a needle of equally ranked bytes is anchored on its last
// byte. needle must not be empty.
func rareIndex(needle []byte) int {
	idx := len(needle) - 1
	best := byteRanks[needle[idx]]
	for i := idx - 1; i >= 0; i-- {
		if r := byteRanks[needle[i]]; r < best {
			idx, best = i, r
		}
	}
	return idx
}
