package api

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/DenethorandEddie/Mahalle/consts"
)

func TestParseTrendingLimit(t *testing.T) {
	limit, err := parseTrendingLimit("")
	assert.NoError(t, err)
	assert.Equal(t, consts.TrendingDefaultLimit, limit)

	limit, err = parseTrendingLimit("25")
	assert.NoError(t, err)
	assert.Equal(t, 25, limit)

	_, err = parseTrendingLimit("abc")
	assert.Error(t, err)

	_, err = parseTrendingLimit("0")
	assert.Error(t, err)

	_, err = parseTrendingLimit("-3")
	assert.Error(t, err)
}
