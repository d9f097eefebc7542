package sessions

// totals accumulates profit and minutes for one bucket
type totals struct {
	profit  float64
	minutes int
}

func (t totals) hours() float64 {
	return round1(float64(t.minutes) / 60)
}

// profitPerHour is unrounded; 0 when no time was played
func (t totals) profitPerHour() float64 {
	if t.minutes == 0 {
		return 0
	}
	return t.profit / float64(t.minutes) * 60
}

// buckets is an accumulator map that remembers the order keys were first seen
type buckets struct {
	keys  []string
	index map[string]int
	vals  []totals
}

func newBuckets() *buckets {
	return &buckets{index: make(map[string]int)}
}

func (b *buckets) add(key string, profit float64, minutes int) {
	i, ok := b.index[key]
	if !ok {
		i = len(b.keys)
		b.index[key] = i
		b.keys = append(b.keys, key)
		b.vals = append(b.vals, totals{})
	}
	b.vals[i].profit += profit
	b.vals[i].minutes += minutes
}

// each visits buckets in first-seen order
func (b *buckets) each(fn func(key string, t totals)) {
	for i, key := range b.keys {
		fn(key, b.vals[i])
	}
}

func (b *buckets) len() int {
	return len(b.keys)
}
