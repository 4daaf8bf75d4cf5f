// Package search implements the filter AST, its per-condition evaluator,
// and the bounded seed-range search loop.
package search

import (
	"encoding/json"
	"fmt"

	"github.com/MJE43/stardew-seed-oracle/internal/apierrors"
)

// Logic tags a filter node as a boolean group or a leaf condition.
type Logic string

const (
	LogicAnd       Logic = "and"
	LogicOr        Logic = "or"
	LogicCondition Logic = "condition"
)

// ConditionType names a leaf condition's kind.
type ConditionType string

const (
	CondDailyLuck  ConditionType = "daily_luck"
	CondNightEvent ConditionType = "night_event"
	CondCartItem   ConditionType = "cart_item"
	CondGeode      ConditionType = "geode"
	CondDishOfDay  ConditionType = "dish_of_day"
	CondWeather    ConditionType = "weather"
	CondMineFloor  ConditionType = "mine_floor"
)

// Node is either a Group (logic = and/or, with Conditions children) or a
// Condition (logic = condition, with a Type and type-specific fields).
type Node struct {
	Logic      Logic   `json:"logic"`
	Conditions []*Node `json:"conditions,omitempty"`

	Type ConditionType `json:"type,omitempty"`

	DayStart int `json:"day_start,omitempty"`
	DayEnd   int `json:"day_end,omitempty"`

	MinLuck float64 `json:"min_luck,omitempty"`
	MaxLuck float64 `json:"max_luck,omitempty"`

	EventType string `json:"event_type,omitempty"`

	ItemID   int32  `json:"item_id,omitempty"`
	MaxPrice *int32 `json:"max_price,omitempty"`

	GeodeNumber      int     `json:"geode_number,omitempty"`
	GeodeType        string  `json:"geode_type,omitempty"`
	TargetItems      []int32 `json:"target_items,omitempty"`
	PlayerID         int32   `json:"player_id,omitempty"`
	DeepestMineLevel int32   `json:"deepest_mine_level,omitempty"`

	DishID int32 `json:"dish_id,omitempty"`

	WeatherType string `json:"weather_type,omitempty"`

	FloorStart  int  `json:"floor_start,omitempty"`
	FloorEnd    int  `json:"floor_end,omitempty"`
	NoMonsters  bool `json:"no_monsters,omitempty"`
	NoDark      bool `json:"no_dark,omitempty"`
	HasMushroom bool `json:"has_mushroom,omitempty"`
}

// ParseFilter decodes and validates a filter document, returning a
// structured parse error identifying the offending path on failure.
func ParseFilter(data []byte) (*Node, error) {
	var root Node
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, apierrors.ParseError("$", fmt.Sprintf("invalid JSON: %v", err))
	}
	if err := validate(&root, "$"); err != nil {
		return nil, err
	}
	return &root, nil
}

func validate(n *Node, path string) error {
	switch n.Logic {
	case LogicAnd, LogicOr:
		for i, c := range n.Conditions {
			if err := validate(c, fmt.Sprintf("%s.conditions[%d]", path, i)); err != nil {
				return err
			}
		}
		return nil
	case LogicCondition:
		return validateCondition(n, path)
	default:
		return apierrors.ParseError(path, fmt.Sprintf("unknown logic %q", n.Logic))
	}
}

func validateCondition(n *Node, path string) error {
	switch n.Type {
	case CondDailyLuck, CondNightEvent, CondCartItem, CondDishOfDay, CondWeather, CondMineFloor:
		if n.DayStart == 0 && n.DayEnd == 0 {
			return apierrors.ParseError(path, fmt.Sprintf("%s condition requires day_start/day_end", n.Type))
		}
		return nil
	case CondGeode:
		if n.GeodeNumber <= 0 {
			return apierrors.ParseError(path, "geode condition requires a positive geode_number")
		}
		return nil
	case "":
		return apierrors.ParseError(path, "condition node missing type")
	default:
		return apierrors.ParseError(path, fmt.Sprintf("unknown condition type %q", n.Type))
	}
}
