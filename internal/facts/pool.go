package facts

const (
	// MaxFactValue bounds every dimension value and range endpoint.
	MaxFactValue = 1_000_000

	// MaxPoolSize bounds the unfiltered product of a topic's dimensions.
	MaxPoolSize = 10_000
)

// Dimension is one named integer axis of a topic's fact pool. When Values is
// non-empty it is used as-is; otherwise the inclusive range Min..Max is used.
type Dimension struct {
	Name   string `json:"name"`
	Min    int    `json:"min,omitempty"`
	Max    int    `json:"max,omitempty"`
	Values []int  `json:"values,omitempty"`
}

// size is the number of distinct values the dimension contributes.
func (d Dimension) size() int64 {
	if len(d.Values) > 0 {
		return int64(len(d.values()))
	}
	if d.Min > d.Max {
		return 0
	}
	return int64(d.Max) - int64(d.Min) + 1
}

// values enumerates the dimension in order, dropping repeated list entries.
func (d Dimension) values() []int {
	if len(d.Values) > 0 {
		seen := make(map[int]bool, len(d.Values))
		out := make([]int, 0, len(d.Values))
		for _, v := range d.Values {
			if seen[v] {
				continue
			}
			seen[v] = true
			out = append(out, v)
		}
		return out
	}
	if d.Min > d.Max {
		return nil
	}
	out := make([]int, 0, d.Max-d.Min+1)
	for v := d.Min; v <= d.Max; v++ {
		out = append(out, v)
	}
	return out
}

// Constraint keeps only facts where field Less is strictly below field Than.
type Constraint struct {
	Less string `json:"less"`
	Than string `json:"than"`
}

// TopicConfig describes how a topic's pool is enumerated.
type TopicConfig struct {
	Dimensions []Dimension `json:"dimensions"`
	LessThan   *Constraint `json:"lessThan,omitempty"`
}

// Empty reports whether the config declares no dimensions at all.
func (c TopicConfig) Empty() bool {
	return len(c.Dimensions) == 0
}

// BuildPool enumerates the cartesian product of the config's dimensions in
// declared order, filtered by the optional constraint. It is pure: the same
// config always yields the same pool in the same order. A config with no
// dimensions, or any empty dimension, yields an empty pool.
func BuildPool(cfg TopicConfig) []Fact {
	if cfg.Empty() {
		return nil
	}

	axes := make([][]int, len(cfg.Dimensions))
	for i, d := range cfg.Dimensions {
		axes[i] = d.values()
		if len(axes[i]) == 0 {
			return nil
		}
	}

	var pool []Fact
	idx := make([]int, len(axes))
	for {
		f := make(Fact, len(axes))
		for i, d := range cfg.Dimensions {
			f[d.Name] = axes[i][idx[i]]
		}
		if cfg.LessThan == nil || f[cfg.LessThan.Less] < f[cfg.LessThan.Than] {
			pool = append(pool, f)
		}

		// Advance the odometer, last dimension fastest.
		i := len(idx) - 1
		for ; i >= 0; i-- {
			idx[i]++
			if idx[i] < len(axes[i]) {
				break
			}
			idx[i] = 0
		}
		if i < 0 {
			return pool
		}
	}
}
