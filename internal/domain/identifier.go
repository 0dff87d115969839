package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// gatewaySuffix marks the group-level screening toggle of a group, answered
// before itemized questions.
const gatewaySuffix = "gateway"

// ItemID is the parsed form of a composite item identifier. The wire format
// is "<topicArea>_g<groupIndex>_<categoryCode>_<itemIndex>", or
// "<topicArea>_g<groupIndex>_gateway" for the group screening toggle.
//
// An ItemID is the sole join key between the selection store and the catalog;
// it is parsed and validated once at the boundary and used as a typed map key
// afterwards.
type ItemID struct {
	Area     TopicArea
	Group    int
	Category Category
	Index    int
	Gateway  bool
}

// ParseItemID parses a composite identifier. Malformed identifiers report
// ok=false; callers skip them silently, they are never an error condition.
// Note that a well-formed identifier may still dangle: whether it resolves to
// a catalog item is decided by the catalog, not here.
func ParseItemID(s string) (ItemID, bool) {
	parts := strings.Split(s, "_")
	if len(parts) < 3 {
		return ItemID{}, false
	}

	area := TopicArea(parts[0])
	if !area.IsValid() {
		return ItemID{}, false
	}

	if len(parts[1]) < 2 || parts[1][0] != 'g' {
		return ItemID{}, false
	}
	group, err := strconv.Atoi(parts[1][1:])
	if err != nil || group < 0 {
		return ItemID{}, false
	}

	if parts[2] == gatewaySuffix {
		if len(parts) != 3 {
			return ItemID{}, false
		}
		return ItemID{Area: area, Group: group, Gateway: true}, true
	}

	if len(parts) != 4 {
		return ItemID{}, false
	}
	category := Category(parts[2])
	if !category.IsValid() {
		return ItemID{}, false
	}
	index, err := strconv.Atoi(parts[3])
	if err != nil || index < 0 {
		return ItemID{}, false
	}

	return ItemID{Area: area, Group: group, Category: category, Index: index}, true
}

// GatewayID returns the screening-toggle identifier for a group.
func GatewayID(area TopicArea, group int) ItemID {
	return ItemID{Area: area, Group: group, Gateway: true}
}

// String renders the identifier in its wire format.
func (id ItemID) String() string {
	if id.Gateway {
		return fmt.Sprintf("%s_g%d_%s", id.Area, id.Group, gatewaySuffix)
	}
	return fmt.Sprintf("%s_g%d_%s_%d", id.Area, id.Group, id.Category, id.Index)
}

// MarshalText implements encoding.TextMarshaler so ItemID keys survive JSON
// round-trips through the session store.
func (id ItemID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *ItemID) UnmarshalText(text []byte) error {
	parsed, ok := ParseItemID(string(text))
	if !ok {
		return fmt.Errorf("malformed item identifier %q", string(text))
	}
	*id = parsed
	return nil
}
