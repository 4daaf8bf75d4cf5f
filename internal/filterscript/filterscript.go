// Package filterscript is an optional escape hatch beyond the JSON
// filter AST in internal/search: a user-supplied JavaScript function
// `(day, facts) => bool`, evaluated once per candidate day inside a
// sandboxed goja runtime. It is narrower than the teacher's scripting
// engine on purpose — no timers, no persistent state across calls, no
// injected log/stop globals — because a search predicate must run to
// completion inside a single evaluation with no additional yields.
package filterscript

import (
	"fmt"
	"time"

	"github.com/dop251/goja"

	"github.com/MJE43/stardew-seed-oracle/internal/mechanics"
	"github.com/MJE43/stardew-seed-oracle/internal/version"
)

const callTimeout = 200 * time.Millisecond

// Facts is the read-only view of one day's mechanic outputs passed to
// the predicate as its second argument.
type Facts struct {
	Seed       int32                `json:"seed"`
	Day        int                  `json:"day"`
	Luck       float64              `json:"luck"`
	DishID     int32                `json:"dish_id"`
	DishQty    int32                `json:"dish_qty"`
	Weather    string               `json:"weather"`
	NightEvent string               `json:"night_event"`
	IsCartDay  bool                 `json:"is_cart_day"`
	CartItems  []mechanics.CartItem `json:"cart_items,omitempty"`
}

// BuildFacts assembles the Facts a predicate sees for one seed/day,
// computing every mechanic once for the caller's convenience.
func BuildFacts(seed int32, day int, v version.Version) Facts {
	dish := mechanics.DishOfDay(seed, day)
	facts := Facts{
		Seed:       seed,
		Day:        day,
		Luck:       mechanics.DailyLuck(seed, day),
		DishID:     dish.ID,
		DishQty:    dish.Quantity,
		Weather:    mechanics.PredictWeather(seed, day, mechanics.WeatherSunny, false, v).String(),
		NightEvent: mechanics.PredictNightEvent(seed, day, v).String(),
		IsCartDay:  mechanics.IsCartDay(day),
	}
	if items, ok := mechanics.PredictCart(seed, day, v); ok {
		facts.CartItems = items[:]
	}
	return facts
}

// Predicate wraps a compiled script exposing a single top-level
// function to call per day. It is not safe for concurrent use; callers
// running a parallel search must construct one Predicate per worker.
type Predicate struct {
	runtime *goja.Runtime
	fn      goja.Callable
}

// Compile parses source and binds its exported `predicate` function.
// The runtime blocks require/fetch/XMLHttpRequest/eval/Function the
// same way the teacher's scripting sandbox does, since a search
// predicate has no legitimate use for any of them.
func Compile(source string) (*Predicate, error) {
	rt := goja.New()
	// Expose Facts fields to the script under lower-cased names
	// (facts.day, facts.luck, facts.dishID, ...).
	rt.SetFieldNameMapper(goja.UncapFieldNameMapper())
	rt.Set("require", goja.Undefined())
	rt.Set("fetch", goja.Undefined())
	rt.Set("XMLHttpRequest", goja.Undefined())
	rt.Set("eval", goja.Undefined())
	rt.Set("Function", goja.Undefined())

	if _, err := rt.RunString(source); err != nil {
		return nil, fmt.Errorf("filterscript: compile: %w", err)
	}

	fnVal := rt.Get("predicate")
	if fnVal == nil || goja.IsUndefined(fnVal) || goja.IsNull(fnVal) {
		return nil, fmt.Errorf("filterscript: script does not define a predicate(day, facts) function")
	}
	fn, ok := goja.AssertFunction(fnVal)
	if !ok {
		return nil, fmt.Errorf("filterscript: predicate is not callable")
	}

	return &Predicate{runtime: rt, fn: fn}, nil
}

// AsSearchPredicate adapts p into the search kernel's ScriptPredicate
// hook, evaluating the script against every day in [dayLo, dayHi] and
// matching if any day satisfies it.
func (p *Predicate) AsSearchPredicate(dayLo, dayHi int, v version.Version) func(seed int32) (bool, error) {
	return func(seed int32) (bool, error) {
		for day := dayLo; day <= dayHi; day++ {
			ok, err := p.Eval(BuildFacts(seed, day, v))
			if err != nil {
				return false, err
			}
			if ok {
				return true, nil
			}
		}
		return false, nil
	}
}

// Eval calls predicate(day, facts) and interprets the result as a
// boolean. It runs the call under a hard timeout, interrupting the
// runtime if the script never returns — a malicious or buggy script
// must never be able to stall a search.
func (p *Predicate) Eval(facts Facts) (bool, error) {
	done := make(chan struct {
		val goja.Value
		err error
	}, 1)

	go func() {
		val, err := p.fn(goja.Undefined(), p.runtime.ToValue(facts.Day), p.runtime.ToValue(facts))
		done <- struct {
			val goja.Value
			err error
		}{val, err}
	}()

	select {
	case r := <-done:
		if r.err != nil {
			return false, fmt.Errorf("filterscript: predicate error: %w", r.err)
		}
		return r.val.ToBoolean(), nil
	case <-time.After(callTimeout):
		p.runtime.Interrupt("filterscript: predicate timeout")
		<-done
		return false, fmt.Errorf("filterscript: predicate exceeded %s", callTimeout)
	}
}
