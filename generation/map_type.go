package generation

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/exp/rand"

	"hebi/components"
)

var (
	// ErrInvalidParameters is returned when map parameters are outside the generator's domain
	ErrInvalidParameters = errors.New("invalid map parameters")
	// ErrUnknownMapType is returned for a map type name that is not registered
	ErrUnknownMapType = errors.New("unknown map type")
)

// MapType is a level layout that can produce map data from a seeded rng
type MapType interface {
	// MapData generates a level, advancing rng
	MapData(rng *rand.Rand) *components.MapData
	// Validate reports parameters the generator cannot honour
	Validate() error
	// Size returns the map dimensions in cells
	Size() (width, height int)
}

// Map type names
const (
	MapCorridors = "corridors"
	MapArena     = "arena"
	MapCaves     = "caves"
)

// mapTypes maps a name to a constructor returning the type's defaults
var mapTypes = map[string]func() MapType{
	MapCorridors: func() MapType { return DefaultCorridorsMap() },
	MapArena:     func() MapType { return DefaultArenaMap() },
	MapCaves:     func() MapType { return DefaultCavesMap() },
}

// MapTypeNames returns the registered map type names in sorted order
func MapTypeNames() []string {
	names := make([]string, 0, len(mapTypes))
	for name := range mapTypes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewMapType returns the named map type with its default parameters.
// The lookup is case-insensitive.
func NewMapType(name string) (MapType, error) {
	ctor, ok := mapTypes[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %s)", ErrUnknownMapType, name, strings.Join(MapTypeNames(), ", "))
	}
	return ctor(), nil
}

// LoadMapType builds the named map type and overlays the JSON parameters in
// raw on top of its defaults. Fields missing from raw keep their default.
func LoadMapType(name string, raw []byte) (MapType, error) {
	mapType, err := NewMapType(name)
	if err != nil {
		return nil, err
	}

	if len(raw) > 0 {
		if err := json.Unmarshal(raw, mapType); err != nil {
			return nil, fmt.Errorf("failed to decode %s map parameters: %w", name, err)
		}
	}

	if err := mapType.Validate(); err != nil {
		return nil, err
	}
	return mapType, nil
}
