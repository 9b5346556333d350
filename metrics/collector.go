package metrics

import (
	"time"

	"github.com/google/uuid"
)

type SearchMetric struct {
	Depth      int
	Budget     time.Duration
	Duration   time.Duration
	Nodes      int // Nodes materialized, root included
	Leaves     int // Nodes left unexpanded by depth limit or terminal position
	Culled     int
	Candidates int // Root moves tied for the best backed-up value
	Eval       int // Backed-up root value
}

type MoveMetric struct {
	Step   int
	Player string // Side to move
	Move   string // UCI
	SearchMetric
}

type GameMetric struct {
	ID         uuid.UUID
	White      int // AgentConfig.ID
	Black      int // AgentConfig.ID
	Winner     string
	Method     string
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
}

type Collector interface {
	Start(depth int, budget time.Duration)
	AddNode()
	AddLeaf()
	AddCull()
	SetCandidates(n int)
	Complete(eval int) SearchMetric
}

// collector is used by a single search at a time, so counters are plain ints
type collector struct {
	depth      int
	budget     time.Duration
	startTime  time.Time
	nodes      int
	leaves     int
	culled     int
	candidates int
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(depth int, budget time.Duration) {
	*m = collector{
		depth:     depth,
		budget:    budget,
		startTime: time.Now(),
	}
}

func (m *collector) AddNode() {
	m.nodes++
}

func (m *collector) AddLeaf() {
	m.leaves++
}

func (m *collector) AddCull() {
	m.culled++
}

func (m *collector) SetCandidates(n int) {
	m.candidates = n
}

func (m *collector) Complete(eval int) SearchMetric {
	return SearchMetric{
		Depth:      m.depth,
		Budget:     m.budget,
		Duration:   time.Since(m.startTime),
		Nodes:      m.nodes,
		Leaves:     m.leaves,
		Culled:     m.culled,
		Candidates: m.candidates,
		Eval:       eval,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(depth int, budget time.Duration) {}
func (m *dummyCollector) AddNode()                             {}
func (m *dummyCollector) AddLeaf()                             {}
func (m *dummyCollector) AddCull()                             {}
func (m *dummyCollector) SetCandidates(n int)                  {}
func (m *dummyCollector) Complete(eval int) SearchMetric       { return SearchMetric{} }
