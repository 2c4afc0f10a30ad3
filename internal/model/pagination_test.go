package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListFilter_Offset(t *testing.T) {
	assert.Equal(t, 0, ListFilter{}.Offset())
	assert.Equal(t, 0, ListFilter{Page: 1}.Offset())
	assert.Equal(t, 20, ListFilter{Page: 3}.Offset())

	huge := ListFilter{Page: 922337203685477582}.Offset()
	assert.GreaterOrEqual(t, huge, 0)
	assert.Equal(t, math.MaxInt/PerPage*PerPage, ListFilter{Page: math.MaxInt}.Offset())
}

func TestListFilter_PastLastPage(t *testing.T) {
	tests := []struct {
		page  int
		total int64
		want  bool
	}{
		{1, 0, true},
		{1, 1, false},
		{2, 10, true},
		{2, 11, false},
		{3, 21, false},
		{4, 21, true},
		{math.MaxInt, 25, true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ListFilter{Page: tt.page}.PastLastPage(tt.total), "page=%d total=%d", tt.page, tt.total)
	}
}
