package mechanics

import (
	"strings"

	"github.com/MJE43/stardew-seed-oracle/internal/hashseed"
	"github.com/MJE43/stardew-seed-oracle/internal/rng"
	"github.com/MJE43/stardew-seed-oracle/internal/tables"
	"github.com/MJE43/stardew-seed-oracle/internal/version"
)

// GeodeType identifies which geode item pool a crack draws from.
type GeodeType int

const (
	GeodeRegular GeodeType = iota
	GeodeFrozen
	GeodeMagma
	GeodeOmni
	GeodeTrove
	GeodeCoconut
)

// ParseGeodeType maps a wire-format geode type name to a GeodeType,
// defaulting to GeodeRegular for anything unrecognized. Shared by the
// HTTP layer and the search filter evaluator so both accept the same
// vocabulary.
func ParseGeodeType(s string) GeodeType {
	switch strings.ToLower(s) {
	case "frozen":
		return GeodeFrozen
	case "magma":
		return GeodeMagma
	case "omni":
		return GeodeOmni
	case "trove":
		return GeodeTrove
	case "coconut":
		return GeodeCoconut
	default:
		return GeodeRegular
	}
}

func (g GeodeType) mineralSet() []int32 {
	switch g {
	case GeodeFrozen:
		return tables.FrozenItems
	case GeodeMagma:
		return tables.MagmaItems
	case GeodeOmni:
		return tables.OmniItems
	case GeodeTrove:
		return tables.TroveItems
	default:
		return tables.GeodeItems
	}
}

// GeodeResult is the outcome of cracking one geode. A hat-only Golden
// Coconut result is signaled with ItemID -1.
type GeodeResult struct {
	ItemID   int32
	Quantity int32
}

// PredictGeode reproduces the item found in the n-th geode of the given
// type. n is 1-indexed. playerID is the cracking farmer's unique ID,
// folded into the seed on 1.6+. deepestMineLevel gates the ore tier
// available to regular and frozen geodes (iron past floor 25, gold past
// floor 75).
func PredictGeode(seed int32, n int, playerID int32, deepestMineLevel int32, gt GeodeType, v version.Version) GeodeResult {
	geodesCracked := int32(n)
	var rngSeed int32
	if v.UsesHashSeeding() {
		rngSeed = hashseed.HashSeed(geodesCracked, seed/2, playerID/2, 0, 0)
	} else {
		rngSeed = geodesCracked + seed/2
	}
	r := rng.New(rngSeed)

	if v.HasGeodeWarmup() {
		num1 := r.NextIn(1, 10)
		r.NextN(int(num1))
		num2 := r.NextIn(1, 10)
		r.NextN(int(num2))
	}

	if v.HasQiBeanCheck() {
		r.NextDouble()
	}

	if gt == GeodeCoconut {
		return coconutResult(r, false)
	}

	if gt == GeodeTrove {
		item := tables.TroveItems[nextMax(r, int32(len(tables.TroveItems)))]
		return GeodeResult{ItemID: item, Quantity: 1}
	}

	var getMineral bool
	if v.HasReversedGeodeCheck() {
		getMineral = r.NextDouble() < 0.5
	} else {
		getMineral = r.NextDouble() >= 0.5
	}

	if !getMineral {
		stack := initialStack(r)

		if r.NextDouble() < 0.5 {
			switch nextMax(r, 4) {
			case 0, 1:
				return GeodeResult{ItemID: 390, Quantity: stack} // Stone
			case 2:
				return GeodeResult{ItemID: 330, Quantity: 1} // Clay
			default:
				var crystal int32
				switch gt {
				case GeodeRegular:
					crystal = 86 // Earth Crystal
				case GeodeFrozen:
					crystal = 84 // Frozen Tear
				case GeodeMagma:
					crystal = 82 // Fire Quartz
				case GeodeOmni:
					crystal = 82 + nextMax(r, 3)*2
				default:
					crystal = 86
				}
				return GeodeResult{ItemID: crystal, Quantity: 1}
			}
		}

		return oreResult(r, gt, deepestMineLevel, stack)
	}

	geodeSet := gt.mineralSet()

	if v.HasReversedGeodeCheck() {
		mineralRoll := r.NextDouble()
		if mineralRoll < 0.008 && geodesCracked > 15 {
			return GeodeResult{ItemID: 74, Quantity: 1} // Prismatic Shard
		}
		item := geodeSet[nextMax(r, int32(len(geodeSet)))]
		return GeodeResult{ItemID: item, Quantity: 1}
	}

	item := geodeSet[nextMax(r, int32(len(geodeSet)))]
	if gt == GeodeOmni && r.NextDouble() < 0.008 && geodesCracked > 15 {
		return GeodeResult{ItemID: 74, Quantity: 1} // Prismatic Shard
	}
	return GeodeResult{ItemID: item, Quantity: 1}
}

// nextMax draws a uniform int32 in [0, n), matching CSRandomLite::next_max.
func nextMax(r *rng.RNG, n int32) int32 {
	return r.NextIn(0, n)
}

// initialStack computes the resource-drop stack size: a base draw of one
// of 1/3/5, bumped to 10 with 10% chance and to 20 with a further 1%
// chance.
func initialStack(r *rng.RNG) int32 {
	stack := nextMax(r, 3)*2 + 1
	if r.NextDouble() < 0.1 {
		stack = 10
	}
	if r.NextDouble() < 0.01 {
		stack = 20
	}
	return stack
}

// oreResult resolves the ore branch for a resource drop, gating the top
// ore tier on how deep the player has ever descended into the mines.
func oreResult(r *rng.RNG, gt GeodeType, deepestMineLevel int32, stack int32) GeodeResult {
	switch gt {
	case GeodeRegular:
		switch nextMax(r, 3) {
		case 0:
			return GeodeResult{ItemID: 378, Quantity: stack} // Copper
		case 1:
			if deepestMineLevel > 25 {
				return GeodeResult{ItemID: 380, Quantity: stack} // Iron
			}
			return GeodeResult{ItemID: 378, Quantity: stack} // Copper
		default:
			return GeodeResult{ItemID: 382, Quantity: stack} // Coal
		}
	case GeodeFrozen:
		switch nextMax(r, 4) {
		case 0:
			return GeodeResult{ItemID: 378, Quantity: stack} // Copper
		case 1:
			return GeodeResult{ItemID: 380, Quantity: stack} // Iron
		case 2:
			return GeodeResult{ItemID: 382, Quantity: stack} // Coal
		default:
			if deepestMineLevel > 75 {
				return GeodeResult{ItemID: 384, Quantity: stack} // Gold
			}
			return GeodeResult{ItemID: 380, Quantity: stack} // Iron
		}
	case GeodeMagma, GeodeOmni:
		switch nextMax(r, 5) {
		case 0:
			return GeodeResult{ItemID: 378, Quantity: stack} // Copper
		case 1:
			return GeodeResult{ItemID: 380, Quantity: stack} // Iron
		case 2:
			return GeodeResult{ItemID: 382, Quantity: stack} // Coal
		case 3:
			return GeodeResult{ItemID: 384, Quantity: stack} // Gold
		default:
			return GeodeResult{ItemID: 386, Quantity: stack/2 + 1} // Iridium
		}
	default:
		return GeodeResult{ItemID: 390, Quantity: stack} // Stone fallback (Trove/Coconut never reach here)
	}
}

// coconutResult resolves a Golden Coconut crack: a 5% chance at a coconut
// hat when the player doesn't already own one, otherwise a seven-way
// item table.
func coconutResult(r *rng.RNG, hasCoconutHat bool) GeodeResult {
	if r.NextDouble() < 0.05 && !hasCoconutHat {
		return GeodeResult{ItemID: -1, Quantity: 1} // Special: Coconut Hat
	}

	switch nextMax(r, 7) {
	case 0:
		return GeodeResult{ItemID: 69, Quantity: 1} // Banana Sapling
	case 1:
		return GeodeResult{ItemID: 835, Quantity: 1} // Mango Sapling
	case 2:
		return GeodeResult{ItemID: 833, Quantity: 5} // Pineapple Seeds
	case 3:
		return GeodeResult{ItemID: 831, Quantity: 5} // Taro Root
	case 4:
		return GeodeResult{ItemID: 820, Quantity: 1} // Fossilized Skull
	case 5:
		return GeodeResult{ItemID: 292, Quantity: 1} // Mahogany Seed
	default:
		return GeodeResult{ItemID: 386, Quantity: 5} // Iridium Ore
	}
}

// PredictGeodes returns count consecutive geode results starting at
// geode index start (1-indexed).
func PredictGeodes(seed int32, start, count int, playerID int32, deepestMineLevel int32, gt GeodeType, v version.Version) []GeodeResult {
	if count <= 0 {
		return nil
	}
	out := make([]GeodeResult, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, PredictGeode(seed, start+i, playerID, deepestMineLevel, gt, v))
	}
	return out
}
