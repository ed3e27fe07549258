package emotion

import (
	"fmt"
	"sort"
)

// Zone is a terrain region modulating decay.
type Zone struct {
	Name          string
	DecayModifier float64
	// Boost holds kinds whose decay is slowed in the zone.
	Boost KindSet
	// Suppress holds kinds whose decay is accelerated in the zone.
	Suppress KindSet
}

// Partition maps a coordinate on a w*h grid to a zone index. It must be
// pure.
type Partition func(x, y, w, h int) int

// RowBands splits the grid into n horizontal bands of equal height, top
// first. With n == 2 this is the midline split.
func RowBands(n int) Partition {
	if n <= 0 {
		n = 1
	}
	return func(_, y, _, h int) int {
		if h <= 0 {
			return 0
		}
		return y * n / h
	}
}

// ColumnBands splits the grid into n vertical bands of equal width, left
// first.
func ColumnBands(n int) Partition {
	if n <= 0 {
		n = 1
	}
	return func(x, _, w, _ int) int {
		if w <= 0 {
			return 0
		}
		return x * n / w
	}
}

var partitions = map[string]func(n int) Partition{
	"rows":    RowBands,
	"columns": ColumnBands,
}

// PartitionNames lists the named partitions accepted by configuration.
func PartitionNames() []string {
	names := make([]string, 0, len(partitions))
	for name := range partitions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ZoneMap partitions the grid into zones.
type ZoneMap struct {
	Zones     []Zone
	Partition Partition
}

// DefaultZoneMap returns the sanctuary/conflict midline split.
func DefaultZoneMap() ZoneMap {
	zm, _ := NewZoneMap("rows", DefaultZones())
	return zm
}

// DefaultZones returns the stock zone table: a calm sanctuary on top and a
// volatile conflict zone below.
func DefaultZones() []Zone {
	return []Zone{
		{
			Name:          "sanctuary",
			DecayModifier: 0.8,
			Boost:         NewKindSet(Love, Hope),
			Suppress:      NewKindSet(Fear, Anger),
		},
		{
			Name:          "conflict",
			DecayModifier: 1.2,
			Boost:         NewKindSet(Fear, Anger),
			Suppress:      NewKindSet(Calm, Hope),
		},
	}
}

// NewZoneMap pairs a zone table with the named partition sized for it.
func NewZoneMap(partition string, zones []Zone) (ZoneMap, error) {
	build, ok := partitions[partition]
	if !ok {
		return ZoneMap{}, fmt.Errorf("emotion: partition %q: %w", partition, ErrInvalidZone)
	}
	return ZoneMap{Zones: zones, Partition: build(len(zones))}, nil
}

// Index returns the zone index of (x, y), clamped into the zone table.
func (zm ZoneMap) Index(x, y, w, h int) int {
	if len(zm.Zones) == 0 || zm.Partition == nil {
		return 0
	}
	idx := zm.Partition(x, y, w, h)
	if idx < 0 {
		return 0
	}
	if idx >= len(zm.Zones) {
		return len(zm.Zones) - 1
	}
	return idx
}

// ZoneOf returns the zone covering (x, y) on a w*h grid.
func (zm ZoneMap) ZoneOf(x, y, w, h int) Zone {
	if len(zm.Zones) == 0 {
		return Zone{DecayModifier: 1}
	}
	return zm.Zones[zm.Index(x, y, w, h)]
}

// Validate checks the zone table and that the partition stays inside it for
// every cell of a w*h grid.
func (zm ZoneMap) Validate(w, h int) error {
	if len(zm.Zones) == 0 {
		return fmt.Errorf("emotion: empty zone table: %w", ErrInvalidZone)
	}
	if zm.Partition == nil {
		return fmt.Errorf("emotion: missing partition: %w", ErrInvalidZone)
	}
	for _, z := range zm.Zones {
		if z.DecayModifier <= 0 {
			return fmt.Errorf("emotion: zone %q decay modifier %g: %w", z.Name, z.DecayModifier, ErrInvalidZone)
		}
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if idx := zm.Partition(x, y, w, h); idx < 0 || idx >= len(zm.Zones) {
				return fmt.Errorf("emotion: partition maps (%d,%d) to zone %d of %d: %w", x, y, idx, len(zm.Zones), ErrInvalidZone)
			}
		}
	}
	return nil
}
