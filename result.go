package seggo

import "github.com/hupe1980/seggo/model"

// assembleResult converts an internal segmentation into the externally
// visible result shape: changepoints plus each segment materialized as
// its explicit column-index sequence.
func assembleResult(sg model.Segmentation) *model.Result {
	res := &model.Result{
		Changepoints: sg.Changepoints(),
		Segments:     make([][]int, len(sg)),
	}
	for i, s := range sg {
		idx := make([]int, 0, s.Len())
		for c := s.Start; c <= s.End; c++ {
			idx = append(idx, c)
		}
		res.Segments[i] = idx
	}
	return res
}
