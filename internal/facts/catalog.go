package facts

import "fmt"

// catalog holds the built-in topics with lookup indices.
type catalog struct {
	topics    []Topic
	byID      map[string]*Topic
	bySection map[Section][]Topic
}

// c is the package-level catalog, built by init().
var c *catalog

func init() {
	if err := validateCatalog(seedTopics); err != nil {
		panic(fmt.Sprintf("facts: built-in catalog: %v", err))
	}
	c = buildCatalog(seedTopics)
}

func buildCatalog(topics []Topic) *catalog {
	cat := &catalog{
		topics:    topics,
		byID:      make(map[string]*Topic, len(topics)),
		bySection: make(map[Section][]Topic),
	}
	for i := range cat.topics {
		t := &cat.topics[i]
		cat.byID[t.ID] = t
		cat.bySection[t.Section] = append(cat.bySection[t.Section], *t)
	}
	return cat
}

// Catalog returns all built-in topics in display order.
func Catalog() []Topic {
	out := make([]Topic, len(c.topics))
	copy(out, c.topics)
	return out
}

// Lookup returns the built-in topic with the given ID.
func Lookup(id string) (Topic, bool) {
	t, ok := c.byID[id]
	if !ok {
		return Topic{}, false
	}
	return *t, true
}

// BySection returns the built-in topics of one section in display order.
func BySection(s Section) []Topic {
	return append([]Topic(nil), c.bySection[s]...)
}

// SRSTopics returns the built-in topics that have a fact pool.
func SRSTopics() []Topic {
	var out []Topic
	for _, t := range c.topics {
		if t.SRS() {
			out = append(out, t)
		}
	}
	return out
}

func pair(x string, xMin, xMax int, y string, yMin, yMax int) TopicConfig {
	return TopicConfig{Dimensions: []Dimension{
		{Name: x, Min: xMin, Max: xMax},
		{Name: y, Min: yMin, Max: yMax},
	}}
}

func single(name string, lo, hi int) TopicConfig {
	return TopicConfig{Dimensions: []Dimension{{Name: name, Min: lo, Max: hi}}}
}

func tables(values ...int) TopicConfig {
	return TopicConfig{Dimensions: []Dimension{
		{Name: "t", Values: values},
		{Name: "b", Min: 2, Max: 9},
	}}
}

var seedTopics = []Topic{
	// Addition
	{ID: "add_1d1d", Name: "1D + 1D", Section: SectionAddition, Description: "single digit foundations", Op: OpAdd, Pool: pair("a", 2, 9, "b", 2, 9)},
	{ID: "add_2d2d", Name: "2D + 2D", Section: SectionAddition, Description: "e.g. 47 + 63", Op: OpAdd},
	{ID: "add_xy0_2d", Name: "XY0 + 2D", Section: SectionAddition, Description: "e.g. 320 + 47", Op: OpAdd},
	{ID: "add_3d3d", Name: "3D + 3D", Section: SectionAddition, Description: "e.g. 473 + 628", Op: OpAdd},

	// Subtraction
	{ID: "sub_1d1d", Name: "Single Digit Facts", Section: SectionSubtraction, Description: "foundations e.g. 9-3, 8-5", Op: OpSub, Pool: TopicConfig{
		Dimensions: []Dimension{{Name: "a", Min: 3, Max: 9}, {Name: "b", Min: 2, Max: 8}},
		LessThan:   &Constraint{Less: "b", Than: "a"},
	}},
	{ID: "sub_comp10", Name: "Complements to 10", Section: SectionSubtraction, Description: "10-? e.g. 10-7=3", Op: OpComplement10, Pool: single("b", 1, 9)},
	{ID: "sub_mul10", Name: "Tens minus 1D", Section: SectionSubtraction, Description: "e.g. 50-7, 80-3", Op: OpTensMinus, Pool: pair("tens", 2, 9, "b", 2, 9)},
	{ID: "sub_2d2d", Name: "2D - 2D", Section: SectionSubtraction, Description: "e.g. 73 - 28", Op: OpSub},
	{ID: "sub_3d2d", Name: "3D - 2D", Section: SectionSubtraction, Description: "e.g. 473 - 58", Op: OpSub},
	{ID: "sub_3d3d", Name: "3D - 3D", Section: SectionSubtraction, Description: "e.g. 731 - 248", Op: OpSub},

	// Multiplication
	{ID: "mul_1d1d", Name: "1D x 1D", Section: SectionMultiplication, Description: "e.g. 7 x 8", Op: OpMul, Pool: pair("a", 3, 9, "b", 3, 9)},
	{ID: "mul_2d1d", Name: "2D x 1D", Section: SectionMultiplication, Description: "both ways e.g. 47x6 and 6x47", Op: OpMul},
	{ID: "mul_2d2d", Name: "2D x 2D", Section: SectionMultiplication, Description: "e.g. 47 x 63", Op: OpMul},

	// Memory
	{ID: "tables_2_9", Name: "Tables 2-9", Section: SectionMemory, Description: "all 3 directions", Op: OpTable, Pool: pair("t", 2, 9, "b", 2, 9)},
	{ID: "tables_11_19", Name: "Tables 11-19", Section: SectionMemory, Description: "all 3 directions", Op: OpTable, Pool: pair("t", 11, 19, "b", 2, 9)},
	{ID: "tables_odd20s", Name: "Tables 21-29 (odd)", Section: SectionMemory, Description: "21,23,25,27,29", Op: OpTable, Pool: tables(21, 23, 25, 27, 29)},
	{ID: "tables_even20s", Name: "Tables 22-28 (even)", Section: SectionMemory, Description: "22,24,26,28", Op: OpTable, Pool: tables(22, 24, 26, 28)},
	{ID: "squares", Name: "Squares", Section: SectionMemory, Description: "n^2, 2 to 40", Op: OpSquare, Pool: single("n", 2, 40)},
	{ID: "cubes", Name: "Cubes", Section: SectionMemory, Description: "n^3, 2 to 20", Op: OpCube, Pool: single("n", 2, 20)},
}
