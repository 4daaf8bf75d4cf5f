package mechanics

import (
	"sort"

	"github.com/MJE43/stardew-seed-oracle/internal/hashseed"
	"github.com/MJE43/stardew-seed-oracle/internal/rng"
	"github.com/MJE43/stardew-seed-oracle/internal/tables"
	"github.com/MJE43/stardew-seed-oracle/internal/version"
)

// CartItem is one of the traveling cart's 10 slots.
type CartItem struct {
	ItemID   int32
	Price    int32
	Quantity int32
}

// priceAndQuantity performs the price and quantity draws every cart slot
// makes regardless of item-selection scheme, given the item's catalog
// base price.
func priceAndQuantity(r *rng.RNG, basePrice int32) (price, quantity int32) {
	p1 := r.NextIn(1, 11)
	p2 := r.NextIn(3, 6)
	price = p1 * 100
	if alt := p2 * basePrice; alt > price {
		price = alt
	}
	quantity = int32(1)
	if r.NextDouble() < 0.1 {
		quantity = 5
	}
	return price, quantity
}

// basePriceFor looks up an item's catalog price. The pre-1.4 roll table
// carries ids only, not prices, so items not present in the 1.6 catalog
// fall back to a fixed base price.
func basePriceFor(itemID int32) int32 {
	for _, e := range tables.Objects16 {
		if e.ID == itemID {
			return e.Price
		}
	}
	return 50
}

// PredictCart returns the day's traveling cart contents, or false if the
// cart is not present on this day.
func PredictCart(seed int32, day int, v version.Version) ([10]CartItem, bool) {
	if !IsCartDay(day) {
		return [10]CartItem{}, false
	}

	switch {
	case v.HasNewCartSystem() && v.UsesHashSeeding():
		return cart16(seed, day), true
	case v.HasNewCartSystem():
		return cart14(seed, day), true
	default:
		return cartPre14(seed, day), true
	}
}

func cartPre14(seed int32, day int) [10]CartItem {
	r := rng.New(seed + int32(day))
	var items [10]CartItem
	for i := 0; i < 10; i++ {
		roll := r.NextIn(2, 790)
		itemID := tables.CartRollToIDPre14[roll]
		price, qty := priceAndQuantity(r, basePriceFor(itemID))
		items[i] = CartItem{ItemID: itemID, Price: price, Quantity: qty}
	}
	return items
}

func cart14(seed int32, day int) [10]CartItem {
	r := rng.New(seed + int32(day))
	var items [10]CartItem
	seen := map[int32]bool{}
	for i := 0; i < 10; i++ {
		roll := r.NextIn(2, 790)
		for !tables.CartItems14[roll] || seen[roll] {
			roll = (roll + 1) % 790
		}
		seen[roll] = true
		price, qty := priceAndQuantity(r, basePriceFor(roll))
		items[i] = CartItem{ItemID: roll, Price: price, Quantity: qty}
	}
	return items
}

type shuffleCandidate struct {
	entry tables.CatalogEntry
	key   int32
}

func cart16(seed int32, day int) [10]CartItem {
	r := rng.New(hashseed.HashSeed(int32(day), seed/2, 0, 0, 0))

	byKey := map[int32]tables.CatalogEntry{}
	for _, entry := range tables.Objects16 {
		key := r.Next()
		if entry.ID == 0 || entry.Price == 0 || entry.Offlimits {
			continue
		}
		// Later entries silently overwrite earlier ones on key collision,
		// matching the reference dictionary-insert order.
		byKey[key] = entry
	}

	survivors := make([]shuffleCandidate, 0, len(byKey))
	for key, entry := range byKey {
		survivors = append(survivors, shuffleCandidate{entry: entry, key: key})
	}
	sort.Slice(survivors, func(i, j int) bool { return survivors[i].key < survivors[j].key })

	var chosen []tables.CatalogEntry
	for _, c := range survivors {
		if c.entry.Category >= 0 || c.entry.Category == -999 || c.entry.TypeExcluded {
			continue
		}
		chosen = append(chosen, c.entry)
		if len(chosen) == 10 {
			break
		}
	}

	var items [10]CartItem
	for i := 0; i < 10 && i < len(chosen); i++ {
		price, qty := priceAndQuantity(r, chosen[i].Price)
		items[i] = CartItem{ItemID: chosen[i].ID, Price: price, Quantity: qty}
	}
	return items
}

// FindItemInCart searches forward from day 1 for the first cart day within
// maxDays whose cart contains itemID, returning the day and price.
func FindItemInCart(seed int32, itemID int32, maxDays int, v version.Version) (day int, price int32, found bool) {
	for d := 1; d <= maxDays; d++ {
		items, ok := PredictCart(seed, d, v)
		if !ok {
			continue
		}
		for _, it := range items {
			if it.ItemID == itemID {
				return d, it.Price, true
			}
		}
	}
	return 0, 0, false
}
