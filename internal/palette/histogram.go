package palette

// histogram은 버킷별 등장 횟수를 셉니다.
// order는 최초 등장 순서를 기록해 동률일 때 먼저 나온 버킷이 이기도록 합니다.
type histogram struct {
	counts map[Accent]int
	order  []Accent
}

func newHistogram() *histogram {
	return &histogram{counts: make(map[Accent]int)}
}

func (h *histogram) add(bucket Accent) {
	if _, seen := h.counts[bucket]; !seen {
		h.order = append(h.order, bucket)
	}
	h.counts[bucket]++
}

func (h *histogram) len() int {
	return len(h.order)
}

// dominant는 최빈 버킷을 반환합니다. 비어 있으면 false입니다.
func (h *histogram) dominant() (Accent, bool) {
	if len(h.order) == 0 {
		return Accent{}, false
	}
	best := h.order[0]
	for _, bucket := range h.order[1:] {
		if h.counts[bucket] > h.counts[best] {
			best = bucket
		}
	}
	return best, true
}
